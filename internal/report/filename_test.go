package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"schema-recon/internal/report"
)

func TestSafePart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Account", "Account"},
		{"dim account (v2)", "dim_account_v2"},
		{"Sales/Orders: EU", "Sales_Orders_EU"},
		{"  spaced  ", "spaced"},
		{"___", "unknown"},
		{"", "unknown"},
		{strings.Repeat("a", 60), strings.Repeat("a", 40)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, report.SafePart(c.in), "SafePart(%q)", c.in)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 1, 15, 45, 0, 0, time.UTC)
	got := report.Filename("Account", "dim account", report.FormatXLSX, ts)
	assert.Equal(t, "mapping_Account_to_dim_account_20240301_154500.xlsx", got)

	got = report.Filename("", "", report.FormatCSV, ts)
	assert.Equal(t, "mapping_unknown_to_unknown_20240301_154500.csv", got)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Account_to_dim_account", report.SheetName("Account", "dim_account"))

	long := report.SheetName(strings.Repeat("x", 40), strings.Repeat("y", 40))
	assert.Len(t, long, 31)
}
