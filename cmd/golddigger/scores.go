package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golddigger/internal/platform/tui"
	"github.com/vovakirdan/golddigger/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display recorded runs, best first.

Without --plain an interactive table opens (Tab switches between best
and recent runs). With --plain the runs are printed as text.

Examples:
  golddigger scores
  golddigger scores --plain
  golddigger scores --plain --recent --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	var runs []storage.Run
	title := "Best runs"
	if flagRecent {
		title = "Recent runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.BestRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot read runs: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'golddigger play' to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %-8s  %-8s  %s\n", "#", "Gold", "Dug", "Mode", "Artifact", "Time", "When")
	fmt.Printf("  %-4s  %-10s  %-6s  %-7s  %-8s  %-8s  %s\n", "-", "----", "---", "----", "--------", "----", "----")

	for i, r := range runs {
		artifact := "-"
		if r.Artifact {
			artifact = "found"
		}
		fmt.Printf("  %-4d  %-10s  %-6s  %-7s  %-8s  %-8s  %s\n",
			i+1,
			"$"+humanize.Comma(int64(r.GoldMined)),
			humanize.Comma(int64(r.BlocksDug)),
			r.Difficulty,
			artifact,
			r.Duration.Truncate(time.Second),
			humanize.Time(r.CreatedAt),
		)
	}

	st, err := store.Stats()
	if err != nil {
		return fmt.Errorf("cannot read stats: %w", err)
	}
	fmt.Println()
	fmt.Println(tui.StatsLine(st))
	return nil
}
