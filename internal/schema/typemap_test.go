package schema_test

import (
	"testing"

	"schema-recon/internal/schema"
)

func TestCanonicalType(t *testing.T) {
	mapping := schema.DefaultTypeMapping()

	cases := []struct {
		raw  string
		want string
	}{
		{"string", "varchar"},
		{"String", "varchar"},
		{"currency", "decimal"},
		{"datetime2", "timestamp"},
		{"NVARCHAR(MAX)", "varchar"},
		{"tinyint", "integer"},
		{"uniqueidentifier", "varchar"},
		{"boolean", "boolean"},
		// Unknown types pass through lower-cased.
		{"Geography", "geography"},
		{"JSONB", "jsonb"},
		// Padding is not stripped, so a padded spelling is its own type.
		{" varchar ", " varchar "},
		{"Varchar\t", "varchar\t"},
	}
	for _, c := range cases {
		if got := schema.CanonicalType(mapping, c.raw); got != c.want {
			t.Errorf("CanonicalType(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestDefaultTypeMappingIsACopy(t *testing.T) {
	first := schema.DefaultTypeMapping()
	first["string"] = "text"
	first["custom"] = "varchar"

	second := schema.DefaultTypeMapping()
	if second["string"] != "varchar" {
		t.Errorf("mutating one copy leaked into the defaults: string -> %q", second["string"])
	}
	if _, ok := second["custom"]; ok {
		t.Error("added key leaked into the defaults")
	}
}
