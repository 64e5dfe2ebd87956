package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/trace"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay a script and show every step",
		Long: `The run command replays an allocation script on a fresh heap, prints
the outcome of each operation and the final region map.

Failed allocations are reported and the replay continues. A failing check
operation makes the command exit non-zero.

Example:
  heapctl run scenario.trace
  heapctl run scenario.trace --arena 4096
  heapctl run scenario.trace --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

// stepJSON is the JSON form of trace.Step.
type stepJSON struct {
	Line  int    `json:"line"`
	Op    string `json:"op"`
	Name  string `json:"name,omitempty"`
	Ptr   uint   `json:"ptr"`
	Size  uint   `json:"size"`
	Error string `json:"error,omitempty"`
}

func runRun(args []string) error {
	h, steps, cleanup, err := replay(args[0])
	if err != nil {
		return err
	}
	defer cleanup()

	if jsonOut {
		out := struct {
			Steps   []stepJSON   `json:"steps"`
			Regions []regionJSON `json:"regions"`
		}{
			Steps:   make([]stepJSON, 0, len(steps)),
			Regions: regionsJSON(h.Regions()),
		}
		for _, s := range steps {
			sj := stepJSON{Line: s.Line, Op: string(s.Op), Name: s.Name, Ptr: uint(s.Ptr), Size: s.Size}
			if s.Err != nil {
				sj.Error = s.Err.Error()
			}
			out.Steps = append(out.Steps, sj)
		}
		if err := printJSON(out); err != nil {
			return err
		}
		return checkFailure(steps)
	}

	for _, s := range steps {
		printInfo("%s\n", s)
	}
	printInfo("\n")
	printRegions(h.Regions())
	return checkFailure(steps)
}

// checkFailure returns an error for the first failed check step.
func checkFailure(steps []trace.Step) error {
	for _, s := range steps {
		if s.Op == trace.OpCheck && s.Err != nil {
			return fmt.Errorf("check failed at line %d: %w", s.Line, s.Err)
		}
	}
	return nil
}
