// Wordle-grid is a single-screen word-guessing game.
//
// Usage:
//
//	wordle-grid [command] [flags]
//
// Running without arguments starts the terminal game. `serve` exposes the
// same grid over a small JSON HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle-grid",
	Short: "Guess the hidden word one row at a time",
	Long: `A Wordle-style guessing game.

Configuration is read from .env and the environment (WORDLE_TARGET,
WORDLE_TRIES, WORDLE_SCORING, PORT, LOG_LEVEL, ...); flags override it.

If no command is specified, the terminal game starts.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runPlay,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	f := rootCmd.PersistentFlags()
	f.StringVar(&flags.target, "target", "", "target word (overrides WORDLE_TARGET)")
	f.IntVar(&flags.tries, "tries", 0, "number of tries (overrides WORDLE_TRIES)")
	f.StringVar(&flags.scoring, "scoring", "", "membership | frequency (overrides WORDLE_SCORING)")
	f.StringVar(&flags.logLevel, "log-level", "", "zerolog level (overrides LOG_LEVEL)")

	serveCmd.Flags().StringVar(&flags.port, "port", "", "listen port (overrides PORT)")

	rootCmd.AddCommand(playCmd, serveCmd)
}
