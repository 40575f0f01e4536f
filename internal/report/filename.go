package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// unsafeFilenameChars collapses every run of characters outside [A-Za-z0-9_-].
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafePart sanitizes an object or table name for use in file and sheet
// names. Empty results become "unknown"; parts are capped at 40 characters.
func SafePart(value string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(value), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		return "unknown"
	}
	if len(cleaned) > 40 {
		cleaned = cleaned[:40]
	}
	return cleaned
}

// Filename builds the report file name for a pair, e.g.
// mapping_Account_to_dim_account_20240301_154500.xlsx.
func Filename(sourceObject, targetTable string, format Format, now time.Time) string {
	return fmt.Sprintf("mapping_%s_to_%s_%s.%s",
		SafePart(sourceObject), SafePart(targetTable), now.Format("20060102_150405"), format)
}

// SheetName builds a workbook sheet name within Excel's 31-character limit.
func SheetName(sourceObject, targetTable string) string {
	name := SafePart(sourceObject) + "_to_" + SafePart(targetTable)
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// uniqueSheetName disambiguates repeated pair names inside one workbook.
func uniqueSheetName(used map[string]bool, base string) string {
	name := base
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		name = trimmed + suffix
	}
	used[name] = true
	return name
}
