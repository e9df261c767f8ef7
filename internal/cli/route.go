package cli

import (
	"fmt"
	"strings"
)

type routeKind int

const (
	routeHome routeKind = iota
	routeProjects
	routeProject
)

// route is a parsed screen path: "/", "/projects" or "/projects/{id}".
type route struct {
	kind  routeKind
	rawID string
}

// parseRoute parses a screen path. The project identifier is kept raw;
// the detail screen validates it so a bad id shows as an error screen.
func parseRoute(path string) (route, error) {
	p := strings.TrimSpace(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}

	switch {
	case p == "/":
		return route{kind: routeHome}, nil
	case p == "/projects":
		return route{kind: routeProjects}, nil
	case strings.HasPrefix(p, "/projects/"):
		raw := strings.TrimPrefix(p, "/projects/")
		if strings.Contains(raw, "/") {
			break
		}
		return route{kind: routeProject, rawID: raw}, nil
	}
	return route{}, fmt.Errorf("unknown route %q (want /, /projects or /projects/{id})", path)
}

// String returns the canonical path.
func (r route) String() string {
	switch r.kind {
	case routeProjects:
		return "/projects"
	case routeProject:
		return "/projects/" + r.rawID
	default:
		return "/"
	}
}

// stack returns the views for r with their parent screens beneath them.
func (r route) stack(state *SharedState) []View {
	views := []View{newHomeView(state)}
	if r.kind >= routeProjects {
		views = append(views, newProjectListView(state))
	}
	if r.kind == routeProject {
		views = append(views, newProjectDetailView(state, r.rawID, nil))
	}
	return views
}
