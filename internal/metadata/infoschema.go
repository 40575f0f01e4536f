package metadata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schema-recon/internal/schema"
)

// InfoSchemaReader parses CSV dumps of information_schema.columns, the shape
// every relational vendor exports:
//
//	table_name,column_name,data_type,character_maximum_length,is_nullable
//
// Header matching is case-insensitive. The length column may also be named
// "length" and the nullable column "nullable". A missing or empty length
// becomes 0 (no length); varchar(max) exports keep their -1 as-is.
type InfoSchemaReader struct{}

func (ir *InfoSchemaReader) Read(r io.Reader) ([]schema.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoFields
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int)
	var tables []schema.Table

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		field := schema.Field{
			Name:     strings.TrimSpace(record[cols.column]),
			DataType: strings.TrimSpace(record[cols.dataType]),
		}
		if cols.length >= 0 {
			field.Length, err = parseLength(record[cols.length])
			if err != nil {
				return nil, fmt.Errorf("csv line %d: %w", line, err)
			}
		}
		if cols.nullable >= 0 {
			field.Nullable = parseBool(record[cols.nullable])
		}

		tableName := strings.TrimSpace(record[cols.table])
		i, ok := byName[tableName]
		if !ok {
			i = len(tables)
			byName[tableName] = i
			tables = append(tables, schema.Table{Name: tableName})
		}
		tables[i].Fields = append(tables[i].Fields, field)
	}

	return validate(tables)
}

type headerIndex struct {
	table    int
	column   int
	dataType int
	length   int
	nullable int
}

func mapHeader(header []string) (headerIndex, error) {
	idx := headerIndex{table: -1, column: -1, dataType: -1, length: -1, nullable: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "table_name":
			idx.table = i
		case "column_name":
			idx.column = i
		case "data_type":
			idx.dataType = i
		case "length", "character_maximum_length":
			idx.length = i
		case "nullable", "is_nullable":
			idx.nullable = i
		}
	}
	if idx.table < 0 || idx.column < 0 || idx.dataType < 0 {
		return idx, fmt.Errorf("csv header must carry table_name, column_name and data_type (got %s)",
			strings.Join(header, ","))
	}
	return idx, nil
}

func parseLength(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "null") {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Some exports serialize lengths as floats (50.0).
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0, fmt.Errorf("invalid length %q", raw)
		}
		n = int(f)
	}
	return n, nil
}
