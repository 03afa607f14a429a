package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	serveFlags      matchFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pong SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent match. By default the
connected player holds the left paddle (W/S) against a random right paddle.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on :23234 with auto-generated key
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --right human             # Both paddles on one keyboard
  pong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveFlags.bind(serveCmd, "human", "random")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Sound would play on the server, not for the remote player.
	cfg.Audio.Enabled = false
	if err := serveFlags.apply(cmd, &cfg, true); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "pong-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Seed:        flagSeed,
	}, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Pong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
