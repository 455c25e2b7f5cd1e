package coursefile

import "testing"

const sampleYAML = `
domain:
  name: intro-algebra
  description: basic algebra skills
  items:
    - id: a
      label: addition
    - id: b
      label: subtraction
    - id: c
      label: multiplication

prerequisites:
  edges:
    - [a, b]
    - [a, c]
`

func TestParseRoundTripsDomainAndEdges(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if c.Domain.Name != "intro-algebra" {
		t.Fatalf("Domain.Name = %q, want intro-algebra", c.Domain.Name)
	}
	if len(c.Domain.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(c.Domain.Items))
	}
	edges := c.Edges()
	if len(edges) != 2 || edges[0] != [2]string{"a", "b"} {
		t.Fatalf("Edges() = %v, want [[a b] [a c]]", edges)
	}
}

func TestBuildDomainTrimsIDsAndValidates(t *testing.T) {
	c, err := Parse([]byte(`
domain:
  name: d
  items:
    - id: "  a  "
      label: x
    - id: b
`))
	if err != nil {
		t.Fatal(err)
	}
	dom, err := c.BuildDomain()
	if err != nil {
		t.Fatal(err)
	}
	if !dom.Has("a") {
		t.Fatal("expected the leading/trailing whitespace in item id to be trimmed")
	}
}

func TestBuildDomainRejectsDuplicateIDs(t *testing.T) {
	c, err := Parse([]byte(`
domain:
  name: d
  items:
    - id: a
    - id: a
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.BuildDomain(); err == nil {
		t.Fatal("expected an error building a domain with duplicate item ids")
	}
}

func TestEdgesReturnsNilWithoutPrerequisitesSection(t *testing.T) {
	c, err := Parse([]byte(`
domain:
  name: d
  items:
    - id: a
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Edges() != nil {
		t.Fatal("expected nil edges when the prerequisites section is omitted")
	}
}

func TestLoadReportsErrorForMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/to/course.yaml"); err == nil {
		t.Fatal("expected an error loading a non-existent course file")
	}
}
