package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best rounds for a variant.

With --tui an interactive scoreboard covering every variant is shown.

Examples:
  invasion scores
  invasion scores invasion_recycle --limit 25
  invasion scores --limit 0
  invasion scores --tui
  invasion scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show, 0 for all")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			exitf("%v", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			exitf("%v", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	variant, _ := registry.Lookup(gameID)

	var scores []storage.ScoreEntry
	if flagScoresLimit == 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", variant.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invasion play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Kills", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "-----", "----", "----------", "----")
	for i, e := range scores {
		difficulty := e.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-8s  %-10s  %s\n",
			i+1, e.Score, e.Kills, e.PlayTime.Round(time.Second), difficulty,
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Average: %.0f  Total kills: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalKills)
	}
}
