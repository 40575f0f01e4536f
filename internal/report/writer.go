package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Format names a report output format. The format doubles as the file
// extension for file-backed formats.
type Format string

const (
	FormatXLSX  Format = "xlsx"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Writer serializes one report in a single output format.
type Writer interface {
	Write(w io.Writer, rep *Report) error
}

// GetWriter returns the writer implementation for a format.
func GetWriter(format Format) (Writer, error) {
	switch format {
	case FormatXLSX:
		return &XLSXWriter{}, nil
	case FormatCSV:
		return &CSVWriter{}, nil
	case FormatJSON:
		return &JSONWriter{Indent: "  "}, nil
	case FormatYAML:
		return &YAMLWriter{}, nil
	case FormatTable:
		return &TableWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Ensure interface implementation
var _ Writer = (*XLSXWriter)(nil)
var _ Writer = (*CSVWriter)(nil)
var _ Writer = (*JSONWriter)(nil)
var _ Writer = (*YAMLWriter)(nil)
var _ Writer = (*TableWriter)(nil)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatXLSX, FormatCSV, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want xlsx, csv, json, yaml or table)", ErrUnknownFormat, s)
	}
}

// DetectFormat picks the format to use when none was requested: a console
// table on a terminal, json when stdout is piped.
func DetectFormat() Format {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// WriteFile serializes the report to a file at path.
func WriteFile(path string, format Format, rep *Report) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err := writer.Write(f, rep); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report file: %w", err)
	}
	return nil
}
