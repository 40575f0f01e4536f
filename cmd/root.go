package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schema-recon/internal/engine"
	"schema-recon/internal/logging"
)

var (
	cfgFile  string
	logLevel string
	verbose  bool
	quiet    bool
	noColor  bool
)

var RootCmd = &cobra.Command{
	Use:   "schema-recon",
	Short: "A schema reconciliation and mapping sheet generator",
	Long: `
  ┌─────────────┐         ┌─────────────┐
  │   SOURCE    │ ──────▶ │   TARGET    │
  │ object/API  │  match  │ table/DWH   │
  └─────────────┘         └─────────────┘

SCHEMA RECON 🧭 - Schema Reconciliation & Mapping Sheet Generator

Reconciles a source object/table schema against a target table schema and
writes a field-by-field mapping report (xlsx, csv, json, yaml or console
table). Schema metadata comes from offline exports: information_schema CSV
dumps, Salesforce describe JSON files, or YAML schema files.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Setup(resolveLogLevel(), noColor)
		if cfg := viper.ConfigFileUsed(); cfg != "" {
			logger.Debug().Str("config", cfg).Msg("loaded config file")
		}
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./schema-recon.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (shorthand for --log-level debug)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored log output")

	// Bind log-level flag to viper
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults()
}

// setDefaults registers the Viper fallbacks used when no config, env or flag
// sets a key.
func setDefaults() {
	viper.SetDefault("matching.threshold", engine.DefaultThreshold)
	viper.SetDefault("report.format", "auto")
	viper.SetDefault("report.out_dir", ".")
}

// resolveLogLevel applies flag precedence: --log-level, then -v / -q, then
// config or environment.
func resolveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	if verbose && quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if verbose {
		return "debug"
	}
	if quiet {
		return "warn"
	}
	return viper.GetString("log_level")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("schema-recon")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SCHEMA_RECON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; flags and env cover everything.
	viper.ReadInConfig()
}
