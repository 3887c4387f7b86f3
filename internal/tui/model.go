package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-grid/internal/game"
)

// Model is the single game screen: grid view, keyboard view and help.
// bubbletea delivers one message at a time, so the board is only ever
// touched from Update.
type Model struct {
	board  *game.Board
	target string
	opts   []game.Option

	keys keyMap
	help help.Model

	width  int
	height int
}

// New builds the screen around a fresh board for target.
func New(target string, opts ...game.Option) (Model, error) {
	b, err := game.New(target, opts...)
	if err != nil {
		return Model{}, err
	}
	return Model{
		board:  b,
		target: target,
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Board exposes the underlying grid (read-only use).
func (m Model) Board() *game.Board { return m.board }

// Init implements tea.Model
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			// target and options were validated by New
			b, _ := game.New(m.target, m.opts...)
			m.board = b
			log.Info().Msg("new game")
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.press(game.KeySubmit)
		case key.Matches(msg, m.keys.Clear):
			m.press(game.KeyClear)
		case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
			if k, err := game.ParseKey(string(msg.Runes)); err == nil {
				m.press(k)
			}
		}
	}
	return m, nil
}

func (m Model) press(k game.Key) {
	changed := m.board.HandleKey(k)
	c := m.board.Cursor()
	log.Debug().Stringer("key", k).Bool("changed", changed).
		Int("row", c.Row).Int("col", c.Col).Msg("key")
}

// Run starts the screen on the terminal's alternate buffer until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
