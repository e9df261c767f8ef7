// Package profile loads the content of the landing screen.
package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/alexanderramin/folio/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultProfile []byte

// Default returns the built-in profile.
func Default() *domain.Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from path, or returns Default when path is empty.
func Load(path string) (*domain.Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile. Unknown keys are rejected so
// typos do not silently drop content.
func Parse(data []byte) (*domain.Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p domain.Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	for i := range p.Links {
		if p.Links[i].Label == "" {
			p.Links[i].Label = string(p.Links[i].Kind)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
