package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-grid/internal/config"
	"github.com/robalobadob/wordle-grid/internal/game"
	"github.com/robalobadob/wordle-grid/internal/httpserver"
	"github.com/robalobadob/wordle-grid/internal/store"
	"github.com/robalobadob/wordle-grid/internal/tui"
)

// flags holds command-line overrides; zero values mean "use config".
var flags struct {
	target   string
	tries    int
	scoring  string
	logLevel string
	port     string
}

var cfg config.Config

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE:  runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grid over HTTP",
	RunE:  runServe,
}

// loadConfig resolves env + .env, then applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if flags.target != "" {
		c.Target = flags.target
	}
	if flags.tries != 0 {
		c.Tries = flags.tries
	}
	if flags.scoring != "" {
		c.Scoring = game.Scoring(flags.scoring)
	}
	if flags.logLevel != "" {
		c.LogLevel = flags.logLevel
	}
	if flags.port != "" {
		c.Port = flags.port
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	cfg = c
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The screen owns stdout/stderr; logs go to LOG_FILE or nowhere.
	if cfg.LogFile == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	} else {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	m, err := tui.New(cfg.Target, cfg.BoardOptions()...)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Int("tries", cfg.Tries).Str("scoring", string(cfg.Scoring)).Msg("starting game")
	return tui.Run(ctx, m)
}

func runServe(cmd *cobra.Command, args []string) error {
	mem := store.NewMemoryStore(cfg.SessionTTL)
	srv := httpserver.New(mem, cfg)
	log.Info().Str("port", cfg.Port).Msg("starting wordle-grid server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server exited")
		return err
	}
	return nil
}
