package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/repository"
)

// ProjectOption customises a fixture project.
type ProjectOption func(*domain.Project)

func WithCategories(raw string) ProjectOption {
	return func(p *domain.Project) { p.Categories = raw }
}

func WithDescription(text string) ProjectOption {
	return func(p *domain.Project) { p.Description = text }
}

func WithImage(url string) ProjectOption {
	return func(p *domain.Project) { p.Image = url }
}

// NewTestProject returns an unsaved project with a description derived from
// its title.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		Title:       title,
		Categories:  "Go, Testing",
		Description: fmt.Sprintf("About %s.", title),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SeedProjects stores one fixture project per title and returns them with
// their assigned IDs.
func SeedProjects(t *testing.T, repo repository.ProjectRepo, titles ...string) []*domain.Project {
	t.Helper()
	out := make([]*domain.Project, 0, len(titles))
	for _, title := range titles {
		p := NewTestProject(title)
		if err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("seeding project %q: %v", title, err)
		}
		out = append(out, p)
	}
	return out
}
