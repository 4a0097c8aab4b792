package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-chaos/internal/catchaos"
	"github.com/vovakirdan/cat-chaos/internal/config"
	"github.com/vovakirdan/cat-chaos/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagSSHDBPath     string
	flagSSHDifficulty string
	flagIdleTimeout   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Cat Chaos SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session and seed. Runs are stored
per-server, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catchaos/host_key

Examples:
  catchaos serve                           # Listen on :23234 with auto-generated key
  catchaos serve --ssh :2222               # Listen on port 2222
  catchaos serve --host-key ./my_host_key  # Use specific host key
  catchaos serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.catchaos/runs.db", "Path to runs database")
	serveCmd.Flags().StringVar(&flagSSHDifficulty, "difficulty", "normal", "Difficulty preset for all sessions")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if !config.IsValidPreset(flagSSHDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagSSHDifficulty)
		os.Exit(1)
	}
	catchaos.SetDifficultyPreset(flagSSHDifficulty)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		Difficulty:  flagSSHDifficulty,
		NewGame:     func() tui.Game { return catchaos.New() },
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Cat Chaos SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
