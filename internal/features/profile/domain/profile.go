package domain

import (
	"errors"
	"fmt"
	"strings"
)

// CopyrightLabel marks the footer section rendered as the copyright strip.
const CopyrightLabel = "copyright-text"

var (
	// ErrInvalidProfile is returned when the portfolio data breaks a rule.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Profile is the whole portfolio the page injects into its sections.
type Profile struct {
	Meta           Meta                      `json:"meta" mapstructure:"meta"`
	Personal       PersonalInfo              `json:"personal" mapstructure:"personal"`
	Bio            Bio                       `json:"bio" mapstructure:"bio"`
	Languages      []Language                `json:"languages" mapstructure:"languages"`
	Skills         []Category[Skill]         `json:"skills" mapstructure:"skills"`
	Certifications []Category[Certification] `json:"certifications" mapstructure:"certifications"`
	Experience     []TimelineEntry           `json:"experience" mapstructure:"experience"`
	Education      []TimelineEntry           `json:"education" mapstructure:"education"`
	Testimonials   []Testimonial             `json:"testimonials" mapstructure:"testimonials"`
	Footer         []FooterSection           `json:"footer" mapstructure:"footer"`
	Page           PageConfig                `json:"page" mapstructure:"page"`
}

// Meta holds the document title and meta tags.
type Meta struct {
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description" mapstructure:"description"`
	Keywords    string `json:"keywords" mapstructure:"keywords"`
	Author      string `json:"author" mapstructure:"author"`
}

// PersonalInfo is the header block of the page.
type PersonalInfo struct {
	FirstName      string `json:"first_name" mapstructure:"first_name"`
	LastName       string `json:"last_name" mapstructure:"last_name"`
	Email          string `json:"email" mapstructure:"email"`
	ContactInfo    string `json:"contact_info" mapstructure:"contact_info"`
	GitHubUsername string `json:"github_username" mapstructure:"github_username"`
}

// FullName joins first and last name.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// MailTo returns the mailto: link for the email, or "" when unset.
func (p PersonalInfo) MailTo() string {
	if p.Email == "" {
		return ""
	}
	return "mailto:" + p.Email
}

// Bio is the about section.
type Bio struct {
	Title string   `json:"title" mapstructure:"title"`
	Intro string   `json:"intro" mapstructure:"intro"`
	Body  []string `json:"body" mapstructure:"body"`
}

// Language is a spoken or programming language with a proficiency bar.
type Language struct {
	Name       string `json:"name" mapstructure:"name"`
	Color      string `json:"color" mapstructure:"color"`
	Percentage int    `json:"percentage" mapstructure:"percentage"`
}

// Skill is one entry of the skills accordion.
type Skill struct {
	Name        string `json:"name" mapstructure:"name"`
	Image       string `json:"image,omitempty" mapstructure:"image"`
	Description string `json:"description" mapstructure:"description"`
}

// Certification is one entry of the certifications accordion.
type Certification struct {
	Name        string `json:"name" mapstructure:"name"`
	Image       string `json:"image,omitempty" mapstructure:"image"`
	Preview     string `json:"preview" mapstructure:"preview"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Category groups accordion items under a heading.
type Category[T any] struct {
	Name  string `json:"name" mapstructure:"name"`
	Items []T    `json:"items" mapstructure:"items"`
}

// DisplayName is the heading shown on the page; underscores become spaces.
func (c Category[T]) DisplayName() string {
	return strings.ReplaceAll(c.Name, "_", " ")
}

// Link is an anchor with its text.
type Link struct {
	URL  string `json:"url" mapstructure:"url"`
	Text string `json:"text" mapstructure:"text"`
}

// TimelineEntry is one experience or education item.
type TimelineEntry struct {
	Title    string   `json:"title" mapstructure:"title"`
	Subtitle string   `json:"subtitle" mapstructure:"subtitle"`
	Duration string   `json:"duration" mapstructure:"duration"`
	Details  []string `json:"details" mapstructure:"details"`
	Tags     []string `json:"tags" mapstructure:"tags"`
	Logos    []string `json:"logos,omitempty" mapstructure:"logos"`
	Links    []Link   `json:"links,omitempty" mapstructure:"links"`
}

// Testimonial is one quote of the testimonial carousel.
type Testimonial struct {
	ID     string `json:"id" mapstructure:"id"`
	Author string `json:"author" mapstructure:"author"`
	Role   string `json:"role,omitempty" mapstructure:"role"`
	Quote  string `json:"quote" mapstructure:"quote"`
	Image  string `json:"image,omitempty" mapstructure:"image"`
}

// FooterSection is a footer column or, under CopyrightLabel, the copyright strip.
type FooterSection struct {
	Label string   `json:"label" mapstructure:"label"`
	Links []Link   `json:"links,omitempty" mapstructure:"links"`
	Lines []string `json:"lines,omitempty" mapstructure:"lines"`
}

// HasData reports whether the section has anything to show.
func (f FooterSection) HasData() bool {
	return len(f.Links) > 0 || len(f.Lines) > 0
}

// Normalize fills defaults the page relies on.
func (p *Profile) Normalize() {
	for i := range p.Certifications {
		for j := range p.Certifications[i].Items {
			if p.Certifications[i].Items[j].Preview == "" {
				p.Certifications[i].Items[j].Preview = "#"
			}
		}
	}
	if p.Meta.Title == "" {
		p.Meta.Title = p.Personal.FullName()
	}
	if p.Meta.Author == "" {
		p.Meta.Author = p.Personal.FullName()
	}
}

// Validate checks the rules the page depends on.
func (p *Profile) Validate() error {
	if p.Personal.FullName() == "" {
		return fmt.Errorf("%w: personal name is required", ErrInvalidProfile)
	}

	for _, l := range p.Languages {
		if l.Percentage < 0 || l.Percentage > 100 {
			return fmt.Errorf("%w: language %q percentage %d out of range [0,100]", ErrInvalidProfile, l.Name, l.Percentage)
		}
	}

	seen := make(map[string]bool)
	for _, s := range p.Page.Sections {
		if s.ContainerID == "" {
			return fmt.Errorf("%w: section %q has no container id", ErrInvalidProfile, s.Key)
		}
		if seen[s.ContainerID] {
			return fmt.Errorf("%w: duplicate container id %q", ErrInvalidProfile, s.ContainerID)
		}
		seen[s.ContainerID] = true
	}

	ids := make(map[string]bool)
	for _, t := range p.Testimonials {
		if t.ID == "" {
			continue
		}
		if ids[t.ID] {
			return fmt.Errorf("%w: duplicate testimonial id %q", ErrInvalidProfile, t.ID)
		}
		ids[t.ID] = true
	}

	return nil
}
