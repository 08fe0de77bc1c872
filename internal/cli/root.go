// Package cli implements the gopxml command line tools: batch analytics,
// regularization and transformation of PAGE-XML files on top of the model
// and codec packages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jahtz/gopxml/internal/version"
	"github.com/jahtz/gopxml/model"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gopxml",
	Short: "Toolkit for PAGE-XML layout ground truth files",
	Long: `gopxml analyzes and transforms PAGE-XML files: character set and region
inventories, text extraction, rule-based regularization and reading order
sorting. Individual files, directories or both can be processed in one run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		model.SetLogger(newLogger())
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gopxml %s\n", version.String()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print warnings for skipped elements and files")
}

// newLogger builds the CLI logger. Warnings are shown only with --verbose.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
