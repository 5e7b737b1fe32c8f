// invasion is the Alien Invasion arcade shooter for the terminal, a desktop
// window or remote players over SSH.
//
// Usage:
//
//	invasion list               - List game variants
//	invasion play [variant]     - Play in the terminal
//	invasion window [variant]   - Play in a desktop window
//	invasion serve              - Start SSH server for remote play
//	invasion scores [variant]   - Show high scores
//	invasion config dump        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invasion/scores.db)
//	--config <path>       - Use a custom configuration file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--env-file <path>     - Asset overrides (default: .env)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination ("-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagEnvFile    string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion",
	Short: "Alien Invasion - shoot down the descending aliens",
	Long: `Alien Invasion is a small arcade shooter. Move along the bottom of the
arena, shoot the aliens coming down from above and do not let them reach you.
They get a little faster every frame.

Available commands:
  list     - Show the game variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Inspect the configuration

Examples:
  invasion play
  invasion play invasion_recycle --difficulty hard
  invasion window --seed 42
  invasion serve --ssh :2222
  invasion scores`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "File with asset path overrides")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.invasion/invasion.log, \"-\" for stderr)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
