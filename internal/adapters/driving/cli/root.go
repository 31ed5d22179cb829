// Package cli provides the command-line interface for the text analyzer.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/makechair/text-analyzer/internal/core/ports/driven"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/logger"
)

// version is set at build time.
var version = "dev"

// verbose enables stage logging on stderr.
var verbose bool

// Services used by the commands. Set by main before Execute.
var (
	analysisService    driving.AnalysisService
	concordanceService driving.ConcordanceService
	documentService    driving.DocumentService
	reportService      driving.ReportService
	settingsService    driving.SettingsService
	fileWatcher        driven.FileWatcher
)

// Services bundles the ports the commands depend on.
type Services struct {
	Analysis    driving.AnalysisService
	Concordance driving.ConcordanceService
	Document    driving.DocumentService
	Reports     driving.ReportService
	Settings    driving.SettingsService
	Watcher     driven.FileWatcher
}

var rootCmd = &cobra.Command{
	Use:   "text-analyzer",
	Short: "Find notation variants in Japanese text",
	Long: `text-analyzer finds 表記揺れ (notation variants) in Japanese documents.

Words that share a reading but are written differently, such as
りんご / 林檎 / リンゴ, are grouped by part of speech and listed with
their counts. Each variant can be traced back to the sentences it
appears in.

Plain text, Markdown and .docx files are supported.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print analysis stages to stderr")
}

// SetServices sets the services used by every command.
func SetServices(s Services) {
	analysisService = s.Analysis
	concordanceService = s.Concordance
	documentService = s.Document
	reportService = s.Reports
	settingsService = s.Settings
	fileWatcher = s.Watcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
