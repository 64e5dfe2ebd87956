package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/alloc"
	"github.com/joshuapare/heapkit/provider"
	"github.com/joshuapare/heapkit/trace"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	arenaSize int
	useMmap   bool
)

// defaultArena is the --arena default: small enough that scripts can reach
// out-of-memory on purpose.
const defaultArena = 1 << 20

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Replay and inspect first-fit heap allocation scripts",
	Long: `heapctl runs allocation scripts (malloc, calloc, realloc, free, fill,
check) against a first-fit region-list heap and reports the resulting region
map, operation counters and fragmentation.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and allocator debug logs")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().IntVar(&arenaSize, "arena", defaultArena, "Arena capacity in bytes")
	rootCmd.PersistentFlags().BoolVar(&useMmap, "mmap", false, "Back the arena with an anonymous mapping")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// openHeap builds an empty heap from the global flags. The returned cleanup
// releases the provider.
func openHeap() (*alloc.Heap, func(), error) {
	cfg := &alloc.Config{}
	if verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if useMmap {
		p, err := provider.NewMmap(arenaSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to reserve arena: %w", err)
		}
		printVerbose("Reserved %d byte mmap arena\n", p.Cap())
		return alloc.New(p, cfg), func() { _ = p.Close() }, nil
	}

	p, err := provider.NewMemory(arenaSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to allocate arena: %w", err)
	}
	printVerbose("Allocated %d byte memory arena\n", p.Cap())
	return alloc.New(p, cfg), func() {}, nil
}

// loadScript parses the script at path.
func loadScript(path string) (*trace.Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	s, err := trace.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	printVerbose("Parsed %d operations from %s\n", len(s.Instrs), path)
	return s, nil
}

// replay loads the script at path and runs it on a fresh heap. The caller
// must invoke cleanup once done with the heap.
func replay(path string) (*alloc.Heap, []trace.Step, func(), error) {
	s, err := loadScript(path)
	if err != nil {
		return nil, nil, nil, err
	}
	h, cleanup, err := openHeap()
	if err != nil {
		return nil, nil, nil, err
	}
	return h, trace.Run(h, s), cleanup, nil
}

// regionJSON is the JSON form of alloc.Region.
type regionJSON struct {
	Offset  int    `json:"offset"`
	Size    uint   `json:"size"`
	Free    bool   `json:"free"`
	Payload uint   `json:"payload"`
	State   string `json:"state"`
}

func regionsJSON(regions []alloc.Region) []regionJSON {
	out := make([]regionJSON, 0, len(regions))
	for _, r := range regions {
		out = append(out, regionJSON{
			Offset:  r.Off,
			Size:    r.Size,
			Free:    r.Free,
			Payload: uint(r.Payload()),
			State:   regionState(r),
		})
	}
	return out
}

func regionState(r alloc.Region) string {
	if r.Free {
		return "free"
	}
	return "used"
}

// printRegions writes the region map as a table.
func printRegions(regions []alloc.Region) {
	printInfo("%-10s %10s  %-5s %-10s\n", "OFFSET", "SIZE", "STATE", "PAYLOAD")
	for _, r := range regions {
		printInfo("0x%08X %10d  %-5s 0x%08X\n", r.Off, r.Size, regionState(r), uint(r.Payload()))
	}
	printInfo("%d region(s)\n", len(regions))
}
