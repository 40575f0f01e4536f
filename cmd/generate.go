package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"schema-recon/internal/report"
)

var (
	generateSource     string
	generateTarget     string
	generateSourceName string
	generateTargetName string
	generateFormat     string
	generateOut        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a mapping report for one source/target pair",
	Long: `Reconciles a source schema against a target schema and writes the
field-by-field mapping report.

Exports are picked up by extension: .json is a Salesforce-style describe,
.csv an information_schema dump, .yaml/.yml a schema file. When an export
holds several tables, pick one with --source-object / --target-table.`,
	Example: `  schema-recon generate --source account_describe.json --target dim_account_columns.csv
  schema-recon generate --source crm.yaml --source-object Contact --target warehouse.csv --target-table dim_contact -f csv -o out/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := BuildEngine()
		if err != nil {
			return err
		}

		source, err := loadTable(generateSource, generateSourceName)
		if err != nil {
			return err
		}
		target, err := loadTable(generateTarget, generateTargetName)
		if err != nil {
			return err
		}
		log.Info().
			Str("source", source.Name).Int("source_fields", len(source.Fields)).
			Str("target", target.Name).Int("target_fields", len(target.Fields)).
			Float64("threshold", eng.Threshold).
			Msg("reconciling schemas")

		rows := eng.Reconcile(source, target)
		rep := report.New(source, target, rows)

		format, detected, err := resolveFormat(generateFormat)
		if err != nil {
			return err
		}

		// Stream to stdout for an explicit "-", and for table or
		// auto-detected formats when no file was requested.
		if generateOut == "-" || (generateOut == "" && (format == report.FormatTable || detected)) {
			if format == report.FormatXLSX {
				return fmt.Errorf("xlsx reports cannot stream to stdout, pass --out")
			}
			writer, err := report.GetWriter(format)
			if err != nil {
				return err
			}
			return writer.Write(cmd.OutOrStdout(), rep)
		}

		path := resolveReportPath(generateOut, rep, format)
		if err := report.WriteFile(path, format, rep); err != nil {
			return err
		}
		log.Debug().Str("path", path).Str("format", string(format)).Msg("report written")

		fmt.Printf("📝 Mapping report: %s\n", path)
		fmt.Printf("📊 %s\n", report.SummaryLine(rep.Summary))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateSource, "source", "", "source metadata export file")
	generateCmd.Flags().StringVar(&generateTarget, "target", "", "target metadata export file")
	generateCmd.Flags().StringVar(&generateSourceName, "source-object", "", "object to pick when the source export holds several")
	generateCmd.Flags().StringVar(&generateTargetName, "target-table", "", "table to pick when the target export holds several")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "report format: xlsx, csv, json, yaml or table (default: config, then auto)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "output file or directory (auto-named inside directories; '-' for stdout)")

	generateCmd.MarkFlagRequired("source")
	generateCmd.MarkFlagRequired("target")
}

// resolveReportPath turns --out into a concrete file path: empty means the
// configured out dir, and directories get an auto-generated file name.
func resolveReportPath(out string, rep *report.Report, format report.Format) string {
	autoName := report.Filename(rep.SourceObject, rep.TargetTable, format, time.Now())
	if out == "" {
		return filepath.Join(resolveOutDir(""), autoName)
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, autoName)
	}
	return out
}
