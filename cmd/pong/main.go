// pong is a minimal two-paddle Pong simulation for the terminal, a native
// window or SSH.
//
// Usage:
//
//	pong play               - Play in this terminal
//	pong window             - Play in a native window (build with -tags ebiten)
//	pong serve              - Start SSH server for remote play
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible play
//	--config <path>     - Load configuration from a YAML file
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball",
	Long: `Pong is a minimal two-paddle Pong simulation. The left paddle moves
with W/S, the right one with the arrow keys; either can be handed to a
random controller instead.

Available commands:
  play     - Play in this terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pong play
  pong play --right random --speed fast
  pong window --sound
  pong serve --ssh :2222
  pong config > ~/.pong/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
