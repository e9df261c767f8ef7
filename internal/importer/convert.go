package importer

import (
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
)

// Convert turns validated seed entries into unsaved projects. Categories
// are normalised to trimmed labels joined with ", ".
func Convert(seed *SeedFile) []*domain.Project {
	out := make([]*domain.Project, 0, len(seed.Projects))
	for _, s := range seed.Projects {
		out = append(out, &domain.Project{
			Title:       strings.TrimSpace(s.Title),
			Categories:  strings.Join(domain.SplitCategories(string(s.Categories)), ", "),
			Description: strings.TrimRight(s.Description, "\n"),
			Image:       strings.TrimSpace(s.Image),
		})
	}
	return out
}
