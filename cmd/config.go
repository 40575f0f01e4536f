package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"schema-recon/internal/engine"
	"schema-recon/internal/metadata"
	"schema-recon/internal/report"
	"schema-recon/internal/schema"
)

// BuildEngine assembles the reconciliation engine from config: the fuzzy
// threshold plus any type_overrides layered on top of the built-in type table.
// Keys are read one by one so env, config file and default values merge per
// key even when a config file defines only part of the `matching:` block.
func BuildEngine() (*engine.Engine, error) {
	threshold := viper.GetFloat64("matching.threshold")
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("matching.threshold must be between 0 and 1, got %v", threshold)
	}

	eng := engine.New()
	eng.Threshold = threshold
	for src, expected := range viper.GetStringMapString("matching.type_overrides") {
		eng.TypeMapping[strings.ToLower(strings.TrimSpace(src))] = strings.ToLower(strings.TrimSpace(expected))
	}
	return eng, nil
}

// resolveFormat applies flag > config precedence. The default "auto" picks a
// format from the terminal: a table on a TTY, json on a pipe. The second
// return reports whether detection kicked in, so callers can route detected
// output to stdout instead of a file.
func resolveFormat(flagValue string) (report.Format, bool, error) {
	raw := flagValue
	if raw == "" {
		raw = viper.GetString("report.format")
	}
	if raw == "" || strings.EqualFold(raw, "auto") {
		return report.DetectFormat(), true, nil
	}
	format, err := report.ParseFormat(raw)
	return format, false, err
}

// resolveOutDir applies flag > config precedence for the report directory.
func resolveOutDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if dir := viper.GetString("report.out_dir"); dir != "" {
		return dir
	}
	return "."
}

// loadTable reads one metadata export and picks a single table out of it.
func loadTable(path, name string) (schema.Table, error) {
	tables, err := metadata.Load(path)
	if err != nil {
		return schema.Table{}, err
	}
	return metadata.SelectTable(tables, name)
}
