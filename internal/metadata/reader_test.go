package metadata_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-recon/internal/metadata"
	"schema-recon/internal/schema"
)

const redshiftDump = `table_name,column_name,data_type,character_maximum_length,is_nullable
dim_account,id,varchar,18,NO
dim_account,email,varchar,50,YES
dim_account,created_date,timestamp,,YES
dim_contact,id,varchar,18,NO
dim_contact,phone,varchar,40,YES
`

func TestInfoSchemaReader(t *testing.T) {
	tables, err := (&metadata.InfoSchemaReader{}).Read(strings.NewReader(redshiftDump))
	require.NoError(t, err)

	want := []schema.Table{
		{
			Name: "dim_account",
			Fields: []schema.Field{
				{Owner: "dim_account", Name: "id", DataType: "varchar", Length: 18},
				{Owner: "dim_account", Name: "email", DataType: "varchar", Length: 50, Nullable: true},
				{Owner: "dim_account", Name: "created_date", DataType: "timestamp", Nullable: true},
			},
		},
		{
			Name: "dim_contact",
			Fields: []schema.Field{
				{Owner: "dim_contact", Name: "id", DataType: "varchar", Length: 18},
				{Owner: "dim_contact", Name: "phone", DataType: "varchar", Length: 40, Nullable: true},
			},
		},
	}
	if diff := cmp.Diff(want, tables); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}
}

func TestInfoSchemaReader_HeaderAliases(t *testing.T) {
	dump := "TABLE_NAME,COLUMN_NAME,DATA_TYPE,length,nullable\n" +
		"users,name,nvarchar,50.0,true\n" +
		"users,bio,nvarchar(max),-1,false\n"

	tables, err := (&metadata.InfoSchemaReader{}).Read(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	require.Len(t, tables[0].Fields, 2)
	assert.Equal(t, 50, tables[0].Fields[0].Length)
	assert.True(t, tables[0].Fields[0].Nullable)
	assert.Equal(t, -1, tables[0].Fields[1].Length)
	assert.False(t, tables[0].Fields[1].Nullable)
}

func TestInfoSchemaReader_MissingHeader(t *testing.T) {
	_, err := (&metadata.InfoSchemaReader{}).Read(strings.NewReader("column_name,data_type\nid,varchar\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table_name")
}

func TestInfoSchemaReader_Empty(t *testing.T) {
	_, err := (&metadata.InfoSchemaReader{}).Read(strings.NewReader(""))
	assert.ErrorIs(t, err, metadata.ErrNoFields)

	_, err = (&metadata.InfoSchemaReader{}).Read(strings.NewReader(
		"table_name,column_name,data_type,length,is_nullable\n"))
	assert.ErrorIs(t, err, metadata.ErrNoFields)
}

func TestInfoSchemaReader_BadLength(t *testing.T) {
	dump := "table_name,column_name,data_type,length,is_nullable\nusers,name,varchar,many,YES\n"
	_, err := (&metadata.InfoSchemaReader{}).Read(strings.NewReader(dump))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid length "many"`)
}

const accountDescribe = `{
  "name": "Account",
  "label": "Account",
  "fields": [
    {"name": "Id", "type": "id", "length": 18, "nillable": false},
    {"name": "Name", "type": "string", "length": 255, "nillable": false},
    {"name": "AnnualRevenue", "type": "currency", "length": 0, "nillable": true},
    {"name": "CreatedDate", "type": "datetime", "length": 0}
  ]
}`

func TestSalesforceReader(t *testing.T) {
	tables, err := (&metadata.SalesforceReader{}).Read(strings.NewReader(accountDescribe))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	want := schema.Table{
		Name: "Account",
		Fields: []schema.Field{
			{Owner: "Account", Name: "Id", DataType: "id", Length: 18},
			{Owner: "Account", Name: "Name", DataType: "string", Length: 255},
			{Owner: "Account", Name: "AnnualRevenue", DataType: "currency", Nullable: true},
			// Absent nillable defaults to nullable.
			{Owner: "Account", Name: "CreatedDate", DataType: "datetime", Nullable: true},
		},
	}
	if diff := cmp.Diff(want, tables[0]); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestSalesforceReader_NoFields(t *testing.T) {
	_, err := (&metadata.SalesforceReader{}).Read(strings.NewReader(`{"name": "Empty__c", "fields": []}`))
	assert.ErrorIs(t, err, metadata.ErrNoFields)
}

func TestSalesforceReader_BadJSON(t *testing.T) {
	_, err := (&metadata.SalesforceReader{}).Read(strings.NewReader("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode describe json")
}

func TestYAMLReader(t *testing.T) {
	doc := `
tables:
  - name: orders
    fields:
      - name: order_id
        type: varchar
        length: 36
      - name: total
        type: decimal
        nullable: true
  - name: order_items
    fields:
      - name: order_id
        type: varchar
        length: 36
`
	tables, err := (&metadata.YAMLReader{}).Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, tables, 2)
	assert.Equal(t, "orders", tables[0].Name)
	assert.Equal(t, 36, tables[0].Fields[0].Length)
	assert.True(t, tables[0].Fields[1].Nullable)
	assert.Equal(t, "orders", tables[0].Fields[0].Owner)
}

func TestYAMLReader_SingleTableForm(t *testing.T) {
	doc := `
name: customers
fields:
  - name: id
    type: varchar
    length: 18
`
	tables, err := (&metadata.YAMLReader{}).Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "customers", tables[0].Name)
}

func TestYAMLReader_SingleTableNameAliases(t *testing.T) {
	for _, key := range []string{"name", "object", "table"} {
		doc := key + `: customers
fields:
  - name: id
    type: varchar
`
		tables, err := (&metadata.YAMLReader{}).Read(strings.NewReader(doc))
		require.NoError(t, err, "key %q", key)
		require.Len(t, tables, 1)
		assert.Equal(t, "customers", tables[0].Name, "key %q", key)
		assert.Equal(t, "customers", tables[0].Fields[0].Owner, "key %q", key)
	}
}

func TestYAMLReader_MissingType(t *testing.T) {
	doc := `
name: customers
fields:
  - name: id
`
	_, err := (&metadata.YAMLReader{}).Read(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a name or data type")
}

func TestGetReader(t *testing.T) {
	r, err := metadata.GetReader("dump.csv")
	require.NoError(t, err)
	assert.IsType(t, &metadata.InfoSchemaReader{}, r)

	r, err = metadata.GetReader("Account.JSON")
	require.NoError(t, err)
	assert.IsType(t, &metadata.SalesforceReader{}, r)

	r, err = metadata.GetReader("schema.yml")
	require.NoError(t, err)
	assert.IsType(t, &metadata.YAMLReader{}, r)

	_, err = metadata.GetReader("schema.xml")
	assert.ErrorIs(t, err, metadata.ErrUnknownFormat)
}

func TestSelectTable(t *testing.T) {
	tables := []schema.Table{
		{Name: "dim_account", Fields: []schema.Field{{Name: "id", DataType: "varchar"}}},
		{Name: "dim_contact", Fields: []schema.Field{{Name: "id", DataType: "varchar"}}},
	}

	got, err := metadata.SelectTable(tables, "DIM_CONTACT")
	require.NoError(t, err)
	assert.Equal(t, "dim_contact", got.Name)

	_, err = metadata.SelectTable(tables, "dim_order")
	assert.ErrorIs(t, err, metadata.ErrTableNotFound)

	// Empty name needs an unambiguous export.
	_, err = metadata.SelectTable(tables, "")
	assert.ErrorIs(t, err, metadata.ErrTableNotFound)

	got, err = metadata.SelectTable(tables[:1], "")
	require.NoError(t, err)
	assert.Equal(t, "dim_account", got.Name)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.csv")
	require.NoError(t, os.WriteFile(path, []byte(redshiftDump), 0o644))

	tables, err := metadata.Load(path)
	require.NoError(t, err)
	assert.Len(t, tables, 2)

	_, err = metadata.Load(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)

	_, err = metadata.Load(filepath.Join(dir, "dump.parquet"))
	assert.ErrorIs(t, err, metadata.ErrUnknownFormat)
}
