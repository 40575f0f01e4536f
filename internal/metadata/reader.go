package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"schema-recon/internal/schema"
)

var (
	ErrUnknownFormat = errors.New("unknown metadata export format")
	ErrNoFields      = errors.New("no fields found in metadata export")
	ErrTableNotFound = errors.New("table not found in metadata export")
)

// Reader parses one offline export format into table metadata.
type Reader interface {
	// Read returns every table the export describes, tables in first-seen
	// order and fields in file order.
	Read(r io.Reader) ([]schema.Table, error)
}

// GetReader picks the reader implementation from the file extension:
// .csv for information_schema exports, .json for Salesforce describe
// exports, .yaml/.yml for schema files.
func GetReader(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &InfoSchemaReader{}, nil
	case ".json":
		return &SalesforceReader{}, nil
	case ".yaml", ".yml":
		return &YAMLReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}
}

// Ensure interface implementation
var _ Reader = (*InfoSchemaReader)(nil)
var _ Reader = (*SalesforceReader)(nil)
var _ Reader = (*YAMLReader)(nil)

// Load reads every table from the export file at path.
func Load(path string) ([]schema.Table, error) {
	reader, err := GetReader(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata export: %w", err)
	}
	defer f.Close()

	tables, err := reader.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return tables, nil
}

// SelectTable picks one table by case-insensitive name. An empty name is
// allowed when the export holds exactly one table.
func SelectTable(tables []schema.Table, name string) (schema.Table, error) {
	if name == "" {
		if len(tables) == 1 {
			return tables[0], nil
		}
		return schema.Table{}, fmt.Errorf("%w: export holds %d tables, pick one of %s",
			ErrTableNotFound, len(tables), strings.Join(tableNames(tables), ", "))
	}

	for _, t := range tables {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return schema.Table{}, fmt.Errorf("%w: %q (export holds %s)",
		ErrTableNotFound, name, strings.Join(tableNames(tables), ", "))
}

func tableNames(tables []schema.Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

// validate rejects malformed metadata before it reaches the matching core.
func validate(tables []schema.Table) ([]schema.Table, error) {
	if len(tables) == 0 {
		return nil, ErrNoFields
	}
	for ti := range tables {
		t := &tables[ti]
		if len(t.Fields) == 0 {
			return nil, fmt.Errorf("%w: table %q has no fields", ErrNoFields, t.Name)
		}
		for fi := range t.Fields {
			f := &t.Fields[fi]
			if f.Name == "" || f.DataType == "" {
				return nil, fmt.Errorf("table %q field %d is missing a name or data type", t.Name, fi+1)
			}
			f.Owner = t.Name
		}
	}
	return tables, nil
}

// parseBool accepts the spellings metadata exports actually use for
// nullability (YES/NO from information_schema, true/false elsewhere).
func parseBool(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "YES", "Y", "TRUE", "1":
		return true
	default:
		return false
	}
}
