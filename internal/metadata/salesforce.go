package metadata

import (
	"encoding/json"
	"fmt"
	"io"

	"schema-recon/internal/schema"
)

// SalesforceReader parses the JSON document returned by the sObject
// describe API, as exported by `sf sobject describe` or saved from a
// describe call. Only the fields relevant to mapping are read.
type SalesforceReader struct{}

type sfDescribe struct {
	Name   string `json:"name"`
	Fields []struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Length   int    `json:"length"`
		Nillable *bool  `json:"nillable"`
	} `json:"fields"`
}

func (sr *SalesforceReader) Read(r io.Reader) ([]schema.Table, error) {
	var desc sfDescribe
	dec := json.NewDecoder(r)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("failed to decode describe json: %w", err)
	}

	t := schema.Table{Name: desc.Name}
	for _, f := range desc.Fields {
		t.Fields = append(t.Fields, schema.Field{
			Name:     f.Name,
			DataType: f.Type,
			Length:   f.Length,
			// Absent nillable means the field accepts nulls.
			Nullable: f.Nillable == nil || *f.Nillable,
		})
	}

	if len(t.Fields) == 0 {
		return nil, fmt.Errorf("%w: object %q", ErrNoFields, t.Name)
	}
	return validate([]schema.Table{t})
}
