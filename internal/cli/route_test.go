package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want route
	}{
		{"/", route{kind: routeHome}},
		{"", route{kind: routeHome}},
		{"/projects", route{kind: routeProjects}},
		{"/projects/", route{kind: routeProjects}},
		{"projects", route{kind: routeProjects}},
		{"/projects/7", route{kind: routeProject, rawID: "7"}},
		{"/projects/7/", route{kind: routeProject, rawID: "7"}},
		// Identifiers are validated by the detail screen, not the router.
		{"/projects/abc", route{kind: routeProject, rawID: "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := parseRoute(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoute_Unknown(t *testing.T) {
	for _, path := range []string{"/about", "/projects/1/edit", "/project/1"} {
		_, err := parseRoute(path)
		require.Error(t, err, path)
		assert.Contains(t, err.Error(), "unknown route")
	}
}

func TestRoute_String(t *testing.T) {
	assert.Equal(t, "/", route{kind: routeHome}.String())
	assert.Equal(t, "/projects", route{kind: routeProjects}.String())
	assert.Equal(t, "/projects/9", route{kind: routeProject, rawID: "9"}.String())
}
