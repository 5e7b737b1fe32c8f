package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeGame   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets remote users play in their terminal.

Every connection gets its own round; all players share one leaderboard.
Remote sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.invasion/host_key

Examples:
  invasion serve                           # Listen on :23234 with auto-generated key
  invasion serve --ssh :2222               # Listen on port 2222
  invasion serve --variant invasion_recycle
  invasion serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeGame, "variant", "invasion", "Game variant served to every session")
}

func runServe(_ *cobra.Command, _ []string) {
	gameID := variantArg([]string{flagServeGame})

	logger, closeLog, err := newLogger("invasion-ssh", false)
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		exitf("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		GameID:      gameID,
		Game:        cfg,
		Difficulty:  string(preset),
		TickRate:    flagFPS,
	}, store, logger)
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting invasion SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("%v", err)
	}
}
