package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/makechair/text-analyzer/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved analysis reports",
	Long: `List, inspect, search and delete saved analysis reports.

Every successful analysis is saved while history.enabled is true.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent reports",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Show the word list of a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyFindCmd = &cobra.Command{
	Use:   "find [word]",
	Short: "Find reports containing a written form",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryFind,
}

var historyConcordanceCmd = &cobra.Command{
	Use:   "concordance [report-id] [word]",
	Short: "Show the sentences of a word in a saved report",
	Args:  cobra.ExactArgs(2),
	RunE:  runHistoryConcordance,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete [report-id]",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

// historyLimit caps list and find output.
var historyLimit int

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of reports")
	historyFindCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of reports")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyFindCmd)
	historyCmd.AddCommand(historyConcordanceCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func requireHistory() error {
	if reportService == nil {
		return errors.New("report service not configured")
	}
	if !reportService.Enabled() {
		return errors.New("history is disabled (set history.enabled to true)")
	}
	return nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	reports, err := reportService.List(commandContext(cmd), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		cmd.Println("No saved reports.")
		return nil
	}

	printReports(cmd, reports)
	return nil
}

func runHistoryFind(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	word := args[0]
	reports, err := reportService.FindWord(commandContext(cmd), word, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to search reports: %w", err)
	}
	if len(reports) == 0 {
		cmd.Printf("No reports contain %s\n", word)
		return nil
	}

	cmd.Printf("Reports containing %s:\n\n", word)
	printReports(cmd, reports)
	return nil
}

func printReports(cmd *cobra.Command, reports []domain.Report) {
	for i := range reports {
		r := &reports[i]
		cmd.Printf("  %s\n", r.ID)
		cmd.Printf("    Source:   %s\n", r.Source)
		cmd.Printf("    Created:  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
		cmd.Printf("    Groups:   %d (%d with variants)\n", r.GroupCount, r.VariantGroupCount)
		cmd.Printf("    Sentences: %d\n", r.SentenceCount)
		cmd.Println()
	}
	cmd.Printf("Total: %d reports\n", len(reports))
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}
	if concordanceService == nil {
		return errors.New("concordance service not configured")
	}

	report, err := getReport(cmd, args[0])
	if err != nil {
		return err
	}

	m := markerFor(cmd)
	cmd.Printf("Report: %s\n", report.ID)
	cmd.Printf("  Source:  %s\n", report.Source)
	cmd.Printf("  Created: %s\n\n", report.CreatedAt.Format("2006-01-02 15:04:05"))

	printGroups(cmd, concordanceService.List(report.Result, savedListOptions()), m)
	cmd.Println()
	cmd.Println(summaryLine(report.Result))
	return nil
}

func runHistoryConcordance(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}
	if concordanceService == nil {
		return errors.New("concordance service not configured")
	}

	report, err := getReport(cmd, args[0])
	if err != nil {
		return err
	}

	group, err := resolveGroup(report.Result, args[1])
	if err != nil {
		return err
	}
	printConcordance(cmd, group, concordanceService.Concordance(report.Result, group.Reading), markerFor(cmd))
	return nil
}

func getReport(cmd *cobra.Command, id string) (*domain.Report, error) {
	report, err := reportService.Get(commandContext(cmd), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if report.Result == nil {
		return nil, fmt.Errorf("report %s has no result: %w", id, domain.ErrNotFound)
	}
	return report, nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if err := requireHistory(); err != nil {
		return err
	}

	id := args[0]
	if err := reportService.Delete(commandContext(cmd), id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	cmd.Printf("Deleted report %s\n", id)
	return nil
}
