package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Text shared by the interactive screens and print mode.
const (
	LoadingProjects = "Loading projects..."
	LoadingProject  = "Loading project details..."
	BackToHome      = "esc: back to home"
	BackToProjects  = "esc: back to projects"
	ProjectNotFound = "Project not found"
	SelectedMarker  = "▸"

	listHeading = "My Projects"
	listIntro   = "Here are some of the projects I've worked on. Feel free to explore!"

	descriptionLines = 2
	rowIndent        = "    "
)

// ListOptions carries the view-local state the list rendering depends on.
type ListOptions struct {
	Width     int
	Cursor    int
	Spinner   string
	Filter    string
	Filtering bool
}

// DetailOptions carries the view-local state the detail rendering depends on.
type DetailOptions struct {
	Width   int
	Spinner string
}

// FormatStatus renders a non-ready phase: a spinner line while loading, or
// a message with one back affordance. Error and Empty look the same.
func FormatStatus(phase fetch.Phase, message, spinner, loading, back string) string {
	switch phase {
	case fetch.PhaseLoading:
		if spinner == "" {
			spinner = SpinnerFrames[0]
		}
		return "\n  " + StylePurple.Render(spinner) + " " + Dim(loading)
	case fetch.PhaseError, fetch.PhaseEmpty:
		return "\n  " + StyleRed.Render("✖") + " " + Bold(message) + "\n\n  " + Dim(back)
	default:
		return ""
	}
}

// FilterProjects returns the projects whose title or categories contain
// filter, case-insensitively. An empty filter returns projects unchanged.
func FilterProjects(projects []domain.Project, filter string) []domain.Project {
	if filter == "" {
		return projects
	}
	lf := strings.ToLower(filter)
	var out []domain.Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Title), lf) ||
			strings.Contains(strings.ToLower(p.Categories), lf) {
			out = append(out, p)
		}
	}
	return out
}

// FormatProjectList renders the list screen for any phase.
func FormatProjectList(s fetch.State[[]domain.Project], opts ListOptions) string {
	if s.Phase != fetch.PhaseReady {
		return FormatStatus(s.Phase, s.Message, opts.Spinner, LoadingProjects, BackToHome)
	}

	var b strings.Builder
	b.WriteString("\n  " + StyleHeader.Render(listHeading) + "\n")
	b.WriteString("  " + Dim(listIntro) + "\n\n")

	if opts.Filtering || opts.Filter != "" {
		cursor := ""
		if opts.Filtering {
			cursor = "█"
		}
		b.WriteString("  " + StyleYellow.Render("/") + " " + opts.Filter + cursor + "\n\n")
	}

	visible := FilterProjects(s.Data, opts.Filter)
	if len(visible) == 0 {
		b.WriteString("  " + Dim(fmt.Sprintf("No projects match %q.", opts.Filter)) + "\n")
		return b.String()
	}

	textWidth := opts.Width - len(rowIndent) - 2
	for i, p := range visible {
		b.WriteString(formatProjectRow(p, i == opts.Cursor, textWidth))
		b.WriteString("\n")
	}
	return b.String()
}

func formatProjectRow(p domain.Project, selected bool, width int) string {
	marker := "  "
	title := StyleFg.Render(Truncate(p.Title, width))
	if selected {
		marker = StyleGreen.Render(SelectedMarker + " ")
		title = StyleBold.Render(Truncate(p.Title, width))
	}

	var b strings.Builder
	b.WriteString(marker + title + "  " + Dim("#"+strconv.FormatInt(p.ID, 10)) + "\n")
	if strings.TrimSpace(p.Description) != "" {
		lines := Clamp(p.Description, width, descriptionLines)
		for i := range lines {
			lines[i] = Dim(lines[i])
		}
		b.WriteString(Indent(lines, rowIndent) + "\n")
	}
	if chips := Chips(p.Labels()); chips != "" {
		b.WriteString(rowIndent + chips + "\n")
	}
	return b.String()
}

// FormatProjectDetail renders the detail screen for any phase.
func FormatProjectDetail(s fetch.State[*domain.Project], opts DetailOptions) string {
	if s.Phase != fetch.PhaseReady {
		return FormatStatus(s.Phase, s.Message, opts.Spinner, LoadingProject, BackToProjects)
	}
	p := s.Data
	if p == nil {
		return FormatStatus(fetch.PhaseEmpty, ProjectNotFound, "", "", BackToProjects)
	}

	width := opts.Width - 4

	var b strings.Builder
	b.WriteString("\n")
	title := Wrap(p.Title, width)
	rule := 0
	for i := range title {
		rule = max(rule, lipgloss.Width(title[i]))
		title[i] = StyleHeader.Render(title[i])
	}
	b.WriteString(Indent(title, "  ") + "\n")
	b.WriteString("  " + Dim(strings.Repeat("─", rule)) + "\n")
	if chips := Chips(p.Labels()); chips != "" {
		b.WriteString("  " + chips + "\n")
	}
	b.WriteString("\n  " + Dim("Description") + "\n")
	b.WriteString(Indent(Wrap(p.Description, width), "  ") + "\n")
	if p.Image != "" {
		b.WriteString("\n  " + Dim("Image") + " " + StyleLink.Render(p.Image) + "\n")
	}
	return b.String()
}

// FormatProjectTable renders projects as a plain table for print mode.
func FormatProjectTable(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Title,
			strings.Join(p.Labels(), ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("ID", "TITLE", "CATEGORIES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return StyleHeader.Padding(0, 1)
			case col == 0:
				return StyleGreen.Padding(0, 1)
			default:
				return StyleFg.Padding(0, 1)
			}
		})
	return t.String()
}
