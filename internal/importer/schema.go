// Package importer loads catalog seed files and stores their projects.
package importer

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeedFile is the top-level YAML structure of a seed file.
type SeedFile struct {
	Projects []ProjectSeed `yaml:"projects"`
}

// ProjectSeed is one project in a seed file.
type ProjectSeed struct {
	Title       string     `yaml:"title"`
	Categories  Categories `yaml:"categories"`
	Description string     `yaml:"description"`
	Image       string     `yaml:"image"`
}

// Categories accepts either the stored comma-separated form or a YAML
// sequence of labels, and always holds the comma-separated form.
type Categories string

func (c *Categories) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = Categories(node.Value)
		return nil
	case yaml.SequenceNode:
		var labels []string
		if err := node.Decode(&labels); err != nil {
			return err
		}
		*c = Categories(strings.Join(labels, ", "))
		return nil
	default:
		return fmt.Errorf("line %d: categories must be a string or a list", node.Line)
	}
}

// LoadSeed reads and decodes the seed file at path.
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a seed document. Unknown keys are rejected.
func ParseSeed(data []byte) (*SeedFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var seed SeedFile
	if err := dec.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parsing seed yaml: %w", err)
	}
	return &seed, nil
}
