package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRegionsCmd())
}

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions <script>",
		Short: "Replay a script and show the final region map",
		Long: `The regions command replays an allocation script and lists every region
of the heap in address order with its size, state and payload pointer.

Example:
  heapctl regions scenario.trace
  heapctl regions scenario.trace --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(args)
		},
	}
	return cmd
}

func runRegions(args []string) error {
	h, steps, cleanup, err := replay(args[0])
	if err != nil {
		return err
	}
	defer cleanup()
	printVerbose("Replayed %d operations\n", len(steps))

	if jsonOut {
		return printJSON(regionsJSON(h.Regions()))
	}
	printRegions(h.Regions())
	return nil
}
