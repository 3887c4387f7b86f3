// internal/config/config.go
//
// Runtime configuration, read from the environment after an optional .env
// file has been loaded by godotenv.
//
// Environment variables:
//   WORDLE_TARGET=hello           target word for new sessions
//   WORDLE_TRIES=6                rows per grid
//   WORDLE_SCORING=membership     membership | frequency
//   PORT=5175                     HTTP listen port (serve)
//   LOG_LEVEL=info                zerolog level
//   LOG_FILE=                     log destination for the terminal screen
//   JWT_SECRET=...                HS256 secret for session tokens
//   SESSION_TTL_HOURS=24          in-memory session lifetime
//   CLIENT_ORIGIN=http://localhost:5173
//   COOKIE_NAME=wordle_session

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/robalobadob/wordle-grid/internal/game"
)

// Config is the resolved runtime configuration.
type Config struct {
	Target       string
	Tries        int
	Scoring      game.Scoring
	Port         string
	LogLevel     string
	LogFile      string
	JWTSecret    string
	SessionTTL   time.Duration
	ClientOrigin string
	CookieName   string
}

// Load reads .env (if present) and the process environment. Only parse
// errors are returned; call Validate once any overrides are applied.
func Load() (Config, error) {
	_ = godotenv.Load()

	tries, err := envInt("WORDLE_TRIES", game.DefaultTries)
	if err != nil {
		return Config{}, err
	}
	ttlHours, err := envInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Target:       getEnv("WORDLE_TARGET", game.DefaultTarget),
		Tries:        tries,
		Scoring:      game.Scoring(getEnv("WORDLE_SCORING", string(game.ScoringMembership))),
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		JWTSecret:    getEnv("JWT_SECRET", "dev_secret_change_me"),
		SessionTTL:   time.Duration(ttlHours) * time.Hour,
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		CookieName:   getEnv("COOKIE_NAME", "wordle_session"),
	}
	return c, nil
}

// Validate checks the fields a Board would otherwise reject at first use.
func (c Config) Validate() error {
	if _, err := game.New(c.Target, c.BoardOptions()...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// BoardOptions converts the grid settings into game options.
func (c Config) BoardOptions() []game.Option {
	return []game.Option{game.WithTries(c.Tries), game.WithScoring(c.Scoring)}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}
