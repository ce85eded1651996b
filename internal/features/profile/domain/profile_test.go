package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *Profile {
	return &Profile{
		Personal: PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		Languages: []Language{
			{Name: "Go", Color: "1", Percentage: 90},
			{Name: "English", Color: "2", Percentage: 100},
		},
		Certifications: []Category[Certification]{
			{Name: "Cloud_Computing", Items: []Certification{{Name: "AWS SAA"}, {Name: "CKA", Preview: "https://example.com/cka"}}},
		},
		Testimonials: []Testimonial{{ID: "t-1", Author: "Grace"}, {Author: "Linus"}, {Author: "Ken"}},
		Footer: []FooterSection{
			{Label: "Links", Links: []Link{{URL: "https://github.com/ada", Text: "GitHub"}}},
			{Label: "Empty"},
			{Label: CopyrightLabel, Lines: []string{"© 2026 Ada Lovelace", "All rights reserved"}},
		},
		Page: PageConfig{
			Sections: []Section{
				{Key: "bio", Label: "About", ContainerID: "bio", DisplayInMenu: true},
				{Key: "testimonials", Label: "Testimonials", ContainerID: "testimonialItems"},
				{Key: "experience", Label: "Experience", ContainerID: "experience", DisplayInMenu: true},
			},
			Themes: []Theme{{Value: "light", Label: "Light"}, {Value: "dark", Label: "Dark"}},
		},
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(p *Profile)
		expectedErr string
	}{
		{name: "Valid", mutate: func(p *Profile) {}},
		{
			name:        "MissingName",
			mutate:      func(p *Profile) { p.Personal.FirstName, p.Personal.LastName = "", "" },
			expectedErr: "personal name is required",
		},
		{
			name:        "PercentageTooHigh",
			mutate:      func(p *Profile) { p.Languages[0].Percentage = 101 },
			expectedErr: "out of range",
		},
		{
			name:        "PercentageNegative",
			mutate:      func(p *Profile) { p.Languages[1].Percentage = -1 },
			expectedErr: "out of range",
		},
		{
			name:        "DuplicateContainer",
			mutate:      func(p *Profile) { p.Page.Sections[2].ContainerID = "bio" },
			expectedErr: `duplicate container id "bio"`,
		},
		{
			name:        "MissingContainer",
			mutate:      func(p *Profile) { p.Page.Sections[0].ContainerID = "" },
			expectedErr: "no container id",
		},
		{
			name:        "DuplicateTestimonial",
			mutate:      func(p *Profile) { p.Testimonials[1].ID = "t-1" },
			expectedErr: `duplicate testimonial id "t-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			err := p.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestProfile_Normalize(t *testing.T) {
	p := validProfile()
	p.Normalize()

	assert.Equal(t, "#", p.Certifications[0].Items[0].Preview)
	assert.Equal(t, "https://example.com/cka", p.Certifications[0].Items[1].Preview)
	assert.Equal(t, "Ada Lovelace", p.Meta.Title)
	assert.Equal(t, "Ada Lovelace", p.Meta.Author)

	p.Meta.Title = "Portfolio"
	p.Normalize()
	assert.Equal(t, "Portfolio", p.Meta.Title)
}

func TestProfile_Menu(t *testing.T) {
	menu := validProfile().Menu()

	assert.Equal(t, []MenuItem{
		{Label: "About", Href: "#bio"},
		{Label: "Experience", Href: "#experience"},
	}, menu)

	assert.Empty(t, (&Profile{}).Menu())
}

func TestProfile_FooterView(t *testing.T) {
	p := validProfile()
	p.Footer = append(p.Footer, FooterSection{
		Label: CopyrightLabel,
		Links: []Link{{URL: "/license", Text: "MIT License"}},
	})

	f := p.FooterView()

	assert.Len(t, f.Columns, 1)
	assert.Equal(t, "Links", f.Columns[0].Label)
	assert.Equal(t, []string{"© 2026 Ada Lovelace", "All rights reserved", "MIT License"}, f.Copyright)

	empty := (&Profile{}).FooterView()
	assert.NotNil(t, empty.Columns)
	assert.NotNil(t, empty.Copyright)
}

func TestProfile_Section(t *testing.T) {
	p := validProfile()

	s, ok := p.Section("testimonials")
	assert.True(t, ok)
	assert.Equal(t, "testimonialItems", s.ContainerID)

	_, ok = p.Section("projects")
	assert.False(t, ok)
}

func TestCategory_DisplayName(t *testing.T) {
	c := Category[Skill]{Name: "Frontend_Web_Development"}
	assert.Equal(t, "Frontend Web Development", c.DisplayName())
}

func TestPersonalInfo(t *testing.T) {
	p := PersonalInfo{FirstName: "Ada", Email: "ada@example.com"}
	assert.Equal(t, "Ada", p.FullName())
	assert.Equal(t, "mailto:ada@example.com", p.MailTo())
	assert.Equal(t, "", PersonalInfo{}.MailTo())
}

func TestProfile_Themes(t *testing.T) {
	assert.Len(t, validProfile().Themes(), 2)
	assert.NotNil(t, (&Profile{}).Themes())
}
