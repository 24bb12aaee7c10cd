package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/buzzy-bird/internal/core"
	"github.com/vovakirdan/buzzy-bird/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent round. The SSH user name is
the player name; all players share the server's leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.buzzy/host_key

Examples:
  buzzy serve                           # Listen on :23234 with auto-generated key
  buzzy serve --ssh :2222               # Listen on port 2222
  buzzy serve --host-key ./my_host_key  # Use specific host key
  buzzy serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh ana@localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, sim, err := loadSimulation()
	if err != nil {
		fail("%v", err)
	}

	rt := runtimeConfig(cfg, 0, 0)
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Sim:         sim,
		Runtime:     rt,
		Debug:       flagDebug,
	})
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting buzzy SSH server on %s (%s)\n", server.Addr(), cfg.PresetName())
	fmt.Println("Connect with: ssh <name>@localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
