package domain

// PageConfig describes the page sections and the theme selector.
type PageConfig struct {
	Sections []Section `json:"sections" mapstructure:"sections"`
	Themes   []Theme   `json:"themes" mapstructure:"themes"`
}

// Section is a page region filled from the profile.
type Section struct {
	Key           string `json:"key" mapstructure:"key"`
	Label         string `json:"label" mapstructure:"label"`
	ContainerID   string `json:"container_id" mapstructure:"container_id"`
	DisplayInMenu bool   `json:"display_in_menu" mapstructure:"display_in_menu"`
}

// Theme is an option of the theme selector; Value is the body class.
type Theme struct {
	Value string `json:"value" mapstructure:"value"`
	Label string `json:"label" mapstructure:"label"`
}

// MenuItem is a sidebar entry.
type MenuItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Footer is the footer split into columns and the copyright strip.
type Footer struct {
	Columns   []FooterSection `json:"columns"`
	Copyright []string        `json:"copyright"`
}

// Menu lists the sections flagged for the sidebar, in page order.
func (p *Profile) Menu() []MenuItem {
	items := make([]MenuItem, 0, len(p.Page.Sections))
	for _, s := range p.Page.Sections {
		if !s.DisplayInMenu {
			continue
		}
		items = append(items, MenuItem{Label: s.Label, Href: "#" + s.ContainerID})
	}
	return items
}

// Section returns the section with the given key.
func (p *Profile) Section(key string) (Section, bool) {
	for _, s := range p.Page.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// FooterView splits the footer. Sections without data are skipped;
// copyright sections contribute their lines and link texts.
func (p *Profile) FooterView() Footer {
	f := Footer{
		Columns:   []FooterSection{},
		Copyright: []string{},
	}
	for _, s := range p.Footer {
		if !s.HasData() {
			continue
		}
		if s.Label != CopyrightLabel {
			f.Columns = append(f.Columns, s)
			continue
		}
		f.Copyright = append(f.Copyright, s.Lines...)
		for _, l := range s.Links {
			f.Copyright = append(f.Copyright, l.Text)
		}
	}
	return f
}

// Themes lists the theme selector options; never nil.
func (p *Profile) Themes() []Theme {
	if p.Page.Themes == nil {
		return []Theme{}
	}
	return p.Page.Themes
}
