package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-grid/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"WORDLE_TARGET", "WORDLE_TRIES", "WORDLE_SCORING", "PORT", "SESSION_TTL_HOURS"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "hello", c.Target)
	assert.Equal(t, 6, c.Tries)
	assert.Equal(t, game.ScoringMembership, c.Scoring)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WORDLE_TARGET", "crane")
	t.Setenv("WORDLE_TRIES", "4")
	t.Setenv("WORDLE_SCORING", "frequency")
	t.Setenv("SESSION_TTL_HOURS", "1")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "crane", c.Target)
	assert.Equal(t, 4, c.Tries)
	assert.Equal(t, game.ScoringFrequency, c.Scoring)
	assert.Equal(t, time.Hour, c.SessionTTL)

	b, err := game.New(c.Target, c.BoardOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Tries())
	assert.Equal(t, game.ScoringFrequency, b.ScoringMode())
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad tries", "WORDLE_TRIES", "six"},
		{"bad ttl", "SESSION_TTL_HOURS", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zero tries", "WORDLE_TRIES", "0"},
		{"bad target", "WORDLE_TARGET", "h3llo"},
		{"bad scoring", "WORDLE_SCORING", "weighted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			c, err := Load()
			require.NoError(t, err)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_AfterOverride(t *testing.T) {
	t.Setenv("WORDLE_TRIES", "0")
	t.Setenv("WORDLE_TARGET", "h3llo")

	c, err := Load()
	require.NoError(t, err)
	require.Error(t, c.Validate())

	c.Tries = 6
	c.Target = "crane"
	assert.NoError(t, c.Validate())
}
