// Package coursefile parses the YAML course-definition format described in
// spec §6: a domain of items plus an optional prerequisite edge list. This
// is a boundary adapter, not part of the core — it only produces the plain
// data shapes (ids, labels, edge pairs) that kst.NewCourseCore consumes,
// the same layering internal/config uses to keep file-format concerns out
// of the components that use the parsed result.
package coursefile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kst-dev/kst/domain"
)

// Item is one YAML item entry.
type Item struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// DomainSection is the YAML `domain` key.
type DomainSection struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Items       []Item `yaml:"items"`
}

// PrerequisitesSection is the YAML `prerequisites` key.
type PrerequisitesSection struct {
	Edges [][2]string `yaml:"edges"`
}

// Course is the parsed, unvalidated course file.
type Course struct {
	Domain        DomainSection         `yaml:"domain"`
	Prerequisites *PrerequisitesSection `yaml:"prerequisites"`
}

// Load reads and parses a course file from path.
func Load(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("coursefile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses course-file YAML from raw bytes.
func Parse(data []byte) (*Course, error) {
	var c Course
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("coursefile: parse yaml: %w", err)
	}
	return &c, nil
}

// BuildDomain converts the parsed domain section into a validated
// domain.Domain, applying the course-file validation rules from spec §6
// (non-empty items, unique ids — both already enforced by domain.NewDomain).
func (c *Course) BuildDomain() (*domain.Domain, error) {
	items := make([]domain.Item, 0, len(c.Domain.Items))
	for _, it := range c.Domain.Items {
		item, err := domain.NewItem(strings.TrimSpace(it.ID), it.Label)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return domain.NewDomain(c.Domain.Name, c.Domain.Description, items)
}

// Edges returns the prerequisite edge list, or nil if the course file
// omitted the prerequisites section.
func (c *Course) Edges() [][2]string {
	if c.Prerequisites == nil {
		return nil
	}
	return c.Prerequisites.Edges
}
