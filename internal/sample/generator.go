// Package sample generates demo metadata export pairs so the tool can be
// tried without exporting anything from a real system.
package sample

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"schema-recon/internal/schema"
)

// Generator builds a source/target schema pair. The same seed always yields
// the same pair.
type Generator struct {
	Seed        int64
	ExtraFields int
}

// anchor fields pin down one example of every match status; the generated
// tail only adds volume around them.
var (
	sourceAnchors = []schema.Field{
		{Name: "Id", DataType: "id", Length: 18},
		{Name: "CustomerID", DataType: "string", Length: 50, Nullable: true},
		{Name: "CreatedDate", DataType: "datetime", Nullable: true},
		{Name: "IsActive", DataType: "boolean"},
		{Name: "Email", DataType: "email", Length: 80, Nullable: true},
		{Name: "Description", DataType: "textarea", Length: 1000, Nullable: true},
		{Name: "AnnualRevenue", DataType: "currency", Nullable: true},
	}
	targetAnchors = []schema.Field{
		{Name: "id", DataType: "varchar", Length: 18},
		{Name: "customer_id", DataType: "varchar", Length: 50, Nullable: true},
		{Name: "created_date", DataType: "date", Nullable: true},
		{Name: "isactive", DataType: "varchar", Length: 5},
		{Name: "email", DataType: "varchar", Length: 50, Nullable: true},
		{Name: "description", DataType: "text", Length: 255, Nullable: true},
		{Name: "legacy_flag", DataType: "boolean", Nullable: true},
	}
)

// Pair returns a CRM-flavored source object and a warehouse-flavored target
// table whose reconciliation exercises every match status.
func (g *Generator) Pair() (schema.Table, schema.Table) {
	source := schema.Table{Name: "Account", Fields: append([]schema.Field(nil), sourceAnchors...)}
	target := schema.Table{Name: "dim_account", Fields: append([]schema.Field(nil), targetAnchors...)}

	faker := gofakeit.New(g.Seed)
	for i := 0; i < g.ExtraFields; i++ {
		base := fmt.Sprintf("%s_%s_%d", faker.Noun(), faker.Noun(), i+1)
		switch faker.Number(0, 2) {
		case 0:
			// Same field on both sides, spelled CamelCase vs snake_case.
			length := faker.Number(20, 120)
			source.Fields = append(source.Fields, schema.Field{
				Name: camel(base), DataType: "string", Length: length, Nullable: true,
			})
			target.Fields = append(target.Fields, schema.Field{
				Name: base, DataType: "varchar", Length: length, Nullable: true,
			})
		case 1:
			source.Fields = append(source.Fields, schema.Field{
				Name:     camel(base),
				DataType: faker.RandomString([]string{"string", "int", "datetime", "boolean", "currency"}),
				Length:   faker.Number(0, 100),
				Nullable: faker.Bool(),
			})
		default:
			target.Fields = append(target.Fields, schema.Field{
				Name:     base,
				DataType: faker.RandomString([]string{"varchar", "integer", "timestamp", "boolean", "decimal"}),
				Length:   faker.Number(0, 100),
				Nullable: faker.Bool(),
			})
		}
	}

	return source, target
}

func camel(snake string) string {
	parts := strings.Split(snake, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

type describeField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Length   int    `json:"length"`
	Nillable bool   `json:"nillable"`
}

type describeDoc struct {
	Name   string          `json:"name"`
	Label  string          `json:"label"`
	Fields []describeField `json:"fields"`
}

// WriteDescribeJSON writes the table as a Salesforce sObject describe
// document, the shape the json metadata reader consumes.
func WriteDescribeJSON(path string, t schema.Table) error {
	doc := describeDoc{Name: t.Name, Label: t.Name}
	for _, f := range t.Fields {
		doc.Fields = append(doc.Fields, describeField{
			Name:     f.Name,
			Label:    f.Name,
			Type:     f.DataType,
			Length:   f.Length,
			Nillable: f.Nullable,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal describe json: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write describe json: %w", err)
	}
	return nil
}

// WriteInfoSchemaCSV writes the table as an information_schema.columns dump,
// the shape the csv metadata reader consumes.
func WriteInfoSchemaCSV(path string, t schema.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create schema csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"table_name", "column_name", "data_type", "character_maximum_length", "is_nullable"}); err != nil {
		f.Close()
		return fmt.Errorf("failed to write schema csv header: %w", err)
	}
	for _, fld := range t.Fields {
		length := ""
		if fld.Length != 0 {
			length = strconv.Itoa(fld.Length)
		}
		nullable := "NO"
		if fld.Nullable {
			nullable = "YES"
		}
		if err := w.Write([]string{t.Name, fld.Name, fld.DataType, length, nullable}); err != nil {
			f.Close()
			return fmt.Errorf("failed to write schema csv row for %s: %w", fld.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush schema csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close schema csv: %w", err)
	}
	return nil
}
