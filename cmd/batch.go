package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"schema-recon/internal/engine"
	"schema-recon/internal/report"
	"schema-recon/internal/schema"
)

var (
	batchManifest string
	batchOutDir   string
	batchFormat   string
	batchDryRun   bool
)

// manifestEndpoint names one side of a pair: the export file plus the
// object/table to pick from it. Relative files resolve against the
// manifest's directory.
type manifestEndpoint struct {
	File   string `yaml:"file"`
	Object string `yaml:"object"`
	Table  string `yaml:"table"`
}

func (m manifestEndpoint) name() string {
	if m.Object != "" {
		return m.Object
	}
	return m.Table
}

type manifestPair struct {
	Source manifestEndpoint `yaml:"source"`
	Target manifestEndpoint `yaml:"target"`
}

func (p manifestPair) label() string {
	src := p.Source.name()
	if src == "" {
		src = filepath.Base(p.Source.File)
	}
	tgt := p.Target.name()
	if tgt == "" {
		tgt = filepath.Base(p.Target.File)
	}
	return src + " → " + tgt
}

type manifestDoc struct {
	Pairs []manifestPair `yaml:"pairs"`
}

// pairResult is one line of the final batch report.
type pairResult struct {
	Label   string
	Summary schema.Summary
	ErrMsg  string
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate mapping reports for every pair in a manifest",
	Long: `Runs the reconciliation for every source/target pair listed in a YAML
manifest. With the xlsx format all pairs land in one workbook, one sheet per
pair; other formats write one file per pair.

Manifest layout:

  pairs:
    - source: {file: account_describe.json, object: Account}
      target: {file: warehouse_columns.csv, table: dim_account}
    - source: {file: contact_describe.json}
      target: {file: warehouse_columns.csv, table: dim_contact}
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := BuildEngine()
		if err != nil {
			return err
		}

		pairs, err := loadManifest(batchManifest)
		if err != nil {
			return err
		}

		// Dry Run
		if batchDryRun {
			log.Info().Msg("dry-run mode active, no reports will be written")
			fmt.Printf("🔍 Manifest pairs:\n")
			for i, p := range pairs {
				fmt.Printf("[%02d] %-32s (%s → %s)\n", i+1, p.label(), p.Source.File, p.Target.File)
			}
			return nil
		}

		format, detected, err := resolveFormat(batchFormat)
		if err != nil {
			return err
		}
		if detected {
			// Batch output always goes to files; the workbook is the
			// batch-native format.
			format = report.FormatXLSX
		} else if format == report.FormatTable {
			return fmt.Errorf("batch writes report files; --format table is only for single pairs")
		}

		outDir := resolveOutDir(batchOutDir)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}

		manifestDir := filepath.Dir(batchManifest)

		log.Info().Int("pairs", len(pairs)).Str("format", string(format)).Msg("starting batch run")
		start := time.Now()

		// Progress Bar
		uiprogress.Start()
		bar := uiprogress.AddBar(len(pairs)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Reconciling: "
		})

		var (
			results []pairResult
			reports []*report.Report
		)
		for _, p := range pairs {
			rep, err := reconcilePair(eng, manifestDir, p)
			bar.Incr()
			if err != nil {
				log.Warn().Str("pair", p.label()).Err(err).Msg("pair failed, continuing")
				results = append(results, pairResult{Label: p.label(), ErrMsg: err.Error()})
				continue
			}
			results = append(results, pairResult{Label: p.label(), Summary: rep.Summary})
			reports = append(reports, rep)
		}

		uiprogress.Stop()

		outputs, err := writeBatchReports(outDir, format, reports, start)
		if err != nil {
			return err
		}

		elapsed := time.Since(start)

		// Final Report
		fmt.Println("\n📊 Batch Report:")
		failed := 0
		totalRows := 0
		for i, r := range results {
			icon := "✓"
			detail := report.SummaryLine(r.Summary)
			if r.ErrMsg != "" {
				icon = "!"
				detail = "FAILED"
				failed++
			}
			fmt.Printf("[%s] [%02d/%02d] %-32s : %s\n", icon, i+1, len(results), r.Label, detail)
			if r.ErrMsg != "" {
				fmt.Printf("    └ Error: %s\n", r.ErrMsg)
			}
			totalRows += r.Summary.Total
		}
		fmt.Println("--------------------------------------------------")
		for _, path := range outputs {
			fmt.Printf("Report: %s\n", path)
		}
		fmt.Printf("Total Rows Mapped: %d\n", totalRows)
		log.Info().Dur("elapsed", elapsed).Int("pairs", len(results)).Int("failed", failed).Msg("batch done")

		if failed > 0 {
			return fmt.Errorf("%d of %d pairs failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(batchCmd)

	// CLI Flags
	batchCmd.Flags().StringVarP(&batchManifest, "manifest", "m", "pairs.yaml", "YAML manifest listing the source/target pairs")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for the report files (overrides config)")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "report format: xlsx, csv, json or yaml (default: config, then xlsx)")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "list the manifest pairs without writing reports")
}

func loadManifest(path string) ([]manifestPair, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filepath.Base(path), err)
	}
	if len(doc.Pairs) == 0 {
		return nil, fmt.Errorf("manifest %s lists no pairs", filepath.Base(path))
	}
	for i, p := range doc.Pairs {
		if p.Source.File == "" || p.Target.File == "" {
			return nil, fmt.Errorf("manifest pair %d is missing a source or target file", i+1)
		}
	}
	return doc.Pairs, nil
}

func reconcilePair(eng *engine.Engine, baseDir string, p manifestPair) (*report.Report, error) {
	source, err := loadTable(resolveManifestPath(baseDir, p.Source.File), p.Source.name())
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", p.Source.File, err)
	}
	target, err := loadTable(resolveManifestPath(baseDir, p.Target.File), p.Target.name())
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", p.Target.File, err)
	}
	return report.New(source, target, eng.Reconcile(source, target)), nil
}

// resolveManifestPath keeps absolute manifest entries as-is and resolves
// relative ones against the manifest's directory.
func resolveManifestPath(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// writeBatchReports writes one workbook for xlsx, one file per pair
// otherwise. All names share the run's timestamp; same-named pairs get a
// numeric suffix so nothing is overwritten.
func writeBatchReports(outDir string, format report.Format, reports []*report.Report, now time.Time) ([]string, error) {
	if len(reports) == 0 {
		return nil, nil
	}

	if format == report.FormatXLSX {
		path := filepath.Join(outDir, fmt.Sprintf("mapping_batch_%s.xlsx", now.Format("20060102_150405")))
		if err := report.WriteWorkbook(path, reports); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	seen := make(map[string]int)
	var outputs []string
	for _, rep := range reports {
		name := report.Filename(rep.SourceObject, rep.TargetTable, format, now)
		seen[name]++
		if n := seen[name]; n > 1 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s_%d%s", strings.TrimSuffix(name, ext), n, ext)
		}
		path := filepath.Join(outDir, name)
		if err := report.WriteFile(path, format, rep); err != nil {
			return nil, err
		}
		outputs = append(outputs, path)
	}
	return outputs, nil
}
