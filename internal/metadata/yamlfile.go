package metadata

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"schema-recon/internal/schema"
)

// YAMLReader parses hand-written schema files. The file either lists several
// tables under a top-level `tables:` key or describes a single table with
// `fields:` and a name at the top level; the name key may be spelled `name:`,
// `object:` or `table:`.
type YAMLReader struct{}

type yamlSchema struct {
	Tables []schema.Table `yaml:"tables"`

	// Single-table form.
	Name   string         `yaml:"name"`
	Object string         `yaml:"object"`
	Table  string         `yaml:"table"`
	Fields []schema.Field `yaml:"fields"`
}

// tableName resolves the single-table form's name, preferring `name:` over
// `object:` over `table:` when a file carries more than one spelling.
func (d *yamlSchema) tableName() string {
	switch {
	case d.Name != "":
		return d.Name
	case d.Object != "":
		return d.Object
	default:
		return d.Table
	}
}

func (yr *YAMLReader) Read(r io.Reader) ([]schema.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var doc yamlSchema
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema yaml: %w", err)
	}

	tables := doc.Tables
	if len(tables) == 0 && (doc.tableName() != "" || len(doc.Fields) > 0) {
		tables = []schema.Table{{Name: doc.tableName(), Fields: doc.Fields}}
	}
	return validate(tables)
}
