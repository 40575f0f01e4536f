package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"schema-recon/internal/metadata"
)

var validateCmd = &cobra.Command{
	Use:   "validate <export-file>...",
	Short: "Check that metadata export files parse cleanly",
	Long: `Loads each export and reports the tables and field counts it holds.
Bad files are reported and skipped, so a whole directory can be checked in
one pass before a batch run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for i, path := range args {
			tables, err := metadata.Load(path)
			if err != nil {
				log.Warn().Str("file", path).Err(err).Msg("export failed to load")
				fmt.Printf("[!] [%02d/%02d] %-32s : %v\n", i+1, len(args), path, err)
				failed++
				continue
			}

			names := make([]string, len(tables))
			for ti, t := range tables {
				names[ti] = fmt.Sprintf("%s (%d fields)", t.Name, len(t.Fields))
			}
			fmt.Printf("[✓] [%02d/%02d] %-32s : %s\n", i+1, len(args), path, strings.Join(names, ", "))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d exports failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
