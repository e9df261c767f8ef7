package formatter

import (
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// GoToProjects is the landing screen's call to action.
const GoToProjects = "Go to my projects →"

var linkIcons = map[domain.LinkKind]string{
	domain.LinkInstagram: "◎",
	domain.LinkLinkedIn:  "in",
	domain.LinkMail:      "✉",
	domain.LinkWeb:       "⌂",
}

// FormatHome renders the landing screen for a profile.
func FormatHome(p *domain.Profile, width int) string {
	textWidth := width - 4

	var b strings.Builder
	b.WriteString("\n  " + StyleHeader.Render(p.Name) + "\n")

	if place := formatPlace(p); place != "" {
		b.WriteString("  " + place + "\n")
	}
	if p.Bio != "" {
		b.WriteString("\n" + Indent(Wrap(p.Bio, textWidth), "  ") + "\n")
	}

	if len(p.Links) > 0 {
		b.WriteString("\n")
		labelWidth := 0
		for _, l := range p.Links {
			labelWidth = max(labelWidth, lipgloss.Width(l.Label))
		}
		for _, l := range p.Links {
			icon, ok := linkIcons[l.Kind]
			if !ok {
				icon = "·"
			}
			label := l.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(l.Label))
			b.WriteString("  " + StylePurple.Render(icon) + " " + StyleFg.Render(label) + "  " + StyleLink.Render(l.URL) + "\n")
		}
	}

	b.WriteString("\n  " + StyleGreen.Render(GoToProjects) + "\n")
	return b.String()
}

func formatPlace(p *domain.Profile) string {
	switch {
	case p.Location != "" && p.Country != "":
		return StyleFg.Render(p.Location) + Dim(" | ") + StyleFg.Render(p.Country)
	case p.Location != "":
		return StyleFg.Render(p.Location)
	default:
		return StyleFg.Render(p.Country)
	}
}
