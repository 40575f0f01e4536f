package report_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"schema-recon/internal/report"
	"schema-recon/internal/schema"
)

func TestXLSXWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&report.XLSXWriter{}).Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Mapping"}, f.GetSheetList())

	rows, err := f.GetRows("Mapping")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, report.Headers, rows[0])

	v, err := f.GetCellValue("Mapping", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Id", v)

	// Lengths are numeric cells, absent lengths blank.
	v, err = f.GetCellValue("Mapping", "D2")
	require.NoError(t, err)
	assert.Equal(t, "18", v)
	v, err = f.GetCellValue("Mapping", "D4")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = f.GetCellValue("Mapping", "I4")
	require.NoError(t, err)
	assert.Equal(t, "Missing in Source", v)
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.xlsx")

	account := sampleReport()
	contact := report.New(
		schema.Table{Name: "Contact"},
		schema.Table{Name: "dim_contact"},
		[]schema.MappingRow{{
			SourceObject: "Contact", SourceField: "Id", SourceType: "id", SourceLength: 18,
			TargetTable: "dim_contact", TargetColumn: "id", TargetType: "varchar", TargetLength: 18,
			MatchStatus: schema.StatusMatched,
		}},
	)

	require.NoError(t, report.WriteWorkbook(path, []*report.Report{account, contact, account}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 3)
	assert.Equal(t, "Account_to_dim_account", sheets[0])
	assert.Equal(t, "Contact_to_dim_contact", sheets[1])
	// The repeated pair gets a disambiguated sheet name.
	assert.Equal(t, "Account_to_dim_account_2", sheets[2])

	rows, err := f.GetRows(sheets[1])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, report.Headers, rows[0])
}
