package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is a portfolio entry owned by the remote catalog.
// The client never mutates it; Categories stays in its raw comma-separated
// form and is only split for display.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Categories  string    `json:"categories"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Labels splits Categories on commas and trims each label.
// Blank segments are dropped, so "" yields no labels.
func (p *Project) Labels() []string {
	return SplitCategories(p.Categories)
}

// SplitCategories parses a raw categories string into display labels.
func SplitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			labels = append(labels, s)
		}
	}
	return labels
}

// Validate checks the fields the catalog guarantees for a stored project.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title is required")
	}
	if p.ID < 0 {
		return fmt.Errorf("project id %d must be positive", p.ID)
	}
	return nil
}

// Route returns the detail path for the project.
func (p *Project) Route() string {
	return fmt.Sprintf("/projects/%d", p.ID)
}
