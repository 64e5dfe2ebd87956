package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/alloc"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <script>",
		Short: "Replay a script and show heap statistics",
		Long: `The stats command replays an allocation script and reports operation
counters (calls, arena growth, splits, coalesces, failures) together with
arena usage and external fragmentation.

Example:
  heapctl stats scenario.trace
  heapctl stats scenario.trace --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// HeapStats is the JSON form of the stats report.
type HeapStats struct {
	Stats         alloc.Stats `json:"stats"`
	Usage         alloc.Usage `json:"usage"`
	Fragmentation float64     `json:"fragmentation"`
	Operations    int         `json:"operations"`
	Errors        int         `json:"errors"`
}

func runStats(args []string) error {
	h, steps, cleanup, err := replay(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	report := HeapStats{
		Stats:      h.Stats(),
		Usage:      h.Usage(),
		Operations: len(steps),
	}
	report.Fragmentation = report.Usage.Fragmentation()
	for _, s := range steps {
		if s.Err != nil {
			report.Errors++
		}
	}

	if jsonOut {
		return printJSON(report)
	}
	if quiet {
		return nil
	}
	printInfo("Script: %s (%d operations, %d errors)\n", args[0], report.Operations, report.Errors)
	h.PrintStats(os.Stdout)
	return nil
}
