package cmd

import (
	"github.com/spf13/cobra"

	"schema-recon/internal/report"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the effective type compatibility table",
	Long: `Shows the source-type to expected-target-type table the classifier
uses, including any matching.type_overrides from the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := BuildEngine()
		if err != nil {
			return err
		}
		return report.WriteTypes(cmd.OutOrStdout(), eng.TypeMapping)
	},
}

func init() {
	RootCmd.AddCommand(typesCmd)
}
