package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blob-arcade/internal/platform/tui"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

var (
	flagStatsPlain bool
	flagStatsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse completed runs",
	Long: `Opens an interactive view of completed runs, with per-level best
times and fewest respawns. Use --plain to print recent runs instead.

Examples:
  blob stats
  blob stats --plain --limit 20
  blob stats clear "Intro Steps"`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

var statsClearCmd = &cobra.Command{
	Use:   "clear [level]",
	Short: "Delete recorded runs for one level, or all runs",
	Args:  cobra.MaximumNArgs(1),
	Run:   runStatsClear,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print recent runs without the interactive view")
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of runs printed with --plain")
	statsCmd.AddCommand(statsClearCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsPlain {
		printRecentRuns(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func printRecentRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blob play' and reach a goal to record one!")
		return
	}

	fmt.Printf("  %-20s  %-8s  %-8s  %s\n", "Level", "Time", "Respawns", "Date")
	fmt.Printf("  %-20s  %-8s  %-8s  %s\n", "-----", "----", "--------", "----")
	for _, r := range runs {
		seconds := float64(r.Ticks) / float64(max(flagFPS, 1))
		fmt.Printf("  %-20s  %-8s  %-8d  %s\n", r.LevelName, fmt.Sprintf("%.1fs", seconds), r.Respawns, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runStatsClear(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	level := ""
	if len(args) == 1 {
		level = args[0]
	}
	if err := store.ClearRuns(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if level == "" {
		fmt.Println("Cleared all runs.")
	} else {
		fmt.Printf("Cleared runs for %q.\n", level)
	}
}
