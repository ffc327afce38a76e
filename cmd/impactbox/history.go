package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/impactbox/internal/platform/tui"
	"github.com/vovakirdan/impactbox/internal/storage"
)

var (
	flagHistoryScene string
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Show recorded headless runs, newest first. By default an interactive
table opens; --plain prints to stdout instead.

Examples:
  impactbox history
  impactbox history --scene playground
  impactbox history --plain --limit 5`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryScene, "scene", "", "Only show runs of this scene")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 50, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print to stdout instead of the interactive table")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.RecentRuns(flagHistoryScene, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'impactbox run' to record the first one.")
		return
	}

	if flagHistoryPlain {
		fmt.Printf("  %-5s  %-16s  %-7s  %-8s  %-18s  %s\n",
			"ID", "Scene", "Ticks", "Impacts", "Checksum", "Date")
		for _, e := range entries {
			fmt.Printf("  %-5d  %-16s  %-7d  %-8d  %016x    %s\n",
				e.ID, e.Scene, e.Ticks, e.Impacts, e.Checksum,
				e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	if err := tui.RunHistory(entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}
