package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCategories_TrimsWhitespace(t *testing.T) {
	got := SplitCategories("Web, Mobile ,API")
	if diff := cmp.Diff([]string{"Web", "Mobile", "API"}, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitCategories_Empty(t *testing.T) {
	assert.Empty(t, SplitCategories(""))
	assert.Empty(t, SplitCategories("   "))
}

func TestSplitCategories_DropsBlankSegments(t *testing.T) {
	got := SplitCategories("Go,, ,CLI,")
	if diff := cmp.Diff([]string{"Go", "CLI"}, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestProject_LabelsLeavesRawCategories(t *testing.T) {
	p := &Project{ID: 1, Title: "Site", Categories: " Web , API"}
	assert.Equal(t, []string{"Web", "API"}, p.Labels())
	assert.Equal(t, " Web , API", p.Categories)
}

func TestProject_Validate(t *testing.T) {
	require.NoError(t, (&Project{ID: 3, Title: "Folio"}).Validate())

	err := (&Project{ID: 3, Title: "  "}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestProject_Route(t *testing.T) {
	p := &Project{ID: 42}
	assert.Equal(t, "/projects/42", p.Route())
}

func TestProfile_Validate(t *testing.T) {
	p := &Profile{Name: "Abe", Links: []SocialLink{{Kind: LinkMail, URL: "mailto:abe@example.com"}}}
	require.NoError(t, p.Validate())

	p.Links = append(p.Links, SocialLink{Kind: LinkWeb})
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no url")

	assert.Error(t, (&Profile{}).Validate())
}
