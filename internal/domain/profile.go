package domain

import "fmt"

// LinkKind identifies how a social link is presented.
type LinkKind string

const (
	LinkInstagram LinkKind = "instagram"
	LinkLinkedIn  LinkKind = "linkedin"
	LinkMail      LinkKind = "mail"
	LinkWeb       LinkKind = "web"
)

// SocialLink is one entry in the landing screen's link row.
type SocialLink struct {
	Kind  LinkKind `yaml:"kind"`
	Label string   `yaml:"label"`
	URL   string   `yaml:"url"`
}

// Profile is the static content of the landing screen.
type Profile struct {
	Name        string       `yaml:"name"`
	Location    string       `yaml:"location"`
	Country     string       `yaml:"country"`
	LocationURL string       `yaml:"location_url"`
	Bio         string       `yaml:"bio"`
	Links       []SocialLink `yaml:"links"`
}

// Validate reports the first missing required field.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	for i, l := range p.Links {
		if l.URL == "" {
			return fmt.Errorf("profile link %d (%s) has no url", i, l.Kind)
		}
	}
	return nil
}
