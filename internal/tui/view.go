package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/robalobadob/wordle-grid/internal/game"
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// View implements tea.Model
func (m Model) View() string {
	snap := m.board.Snapshot()
	body := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("W O R D L E"),
		renderGrid(snap),
		"",
		renderKeyboard(snap.Hints),
		m.renderStatus(snap),
		m.help.View(m.keys),
	)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

// classColor maps a classification to its background color.
func classColor(c game.Classification) lipgloss.Color {
	switch c {
	case game.Correct:
		return PrimaryColor
	case game.Present:
		return SecondaryColor
	case game.Absent:
		return DarkGreyColor
	default:
		return BlackColor
	}
}

func renderCell(c game.CellView) string {
	border := DarkGreyColor
	if c.Active {
		border = GreyColor
	}
	return cellStyle.
		Background(classColor(c.Class)).
		BorderForeground(border).
		Render(strings.ToUpper(c.Text))
}

func renderGrid(snap game.Snapshot) string {
	rows := make([]string, len(snap.Rows))
	for i, row := range snap.Rows {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, lo.Map(row, func(c game.CellView, _ int) string {
			return renderCell(c)
		})...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// keyClass picks the tint for a keyboard letter; correct wins over present,
// present over absent.
func keyClass(letter string, h game.Hints) game.Classification {
	switch {
	case lo.Contains(h.Correct, letter):
		return game.Correct
	case lo.Contains(h.Present, letter):
		return game.Present
	case lo.Contains(h.Absent, letter):
		return game.Absent
	default:
		return game.Unrevealed
	}
}

func renderKey(label string, c game.Classification) string {
	bg := classColor(c)
	if c == game.Unrevealed {
		bg = GreyColor
	}
	return keyStyle.Background(bg).Render(label)
}

func renderKeyboard(h game.Hints) string {
	lines := make([]string, 0, len(keyboardRows))
	for i, row := range keyboardRows {
		var keys []string
		if i == len(keyboardRows)-1 {
			keys = append(keys, renderKey("ENTER", game.Unrevealed))
		}
		for _, r := range row {
			l := string(r)
			keys = append(keys, renderKey(strings.ToUpper(l), keyClass(l, h)))
		}
		if i == len(keyboardRows)-1 {
			keys = append(keys, renderKey("⌫", game.Unrevealed))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderStatus(snap game.Snapshot) string {
	switch snap.Status {
	case game.StatusWon:
		return WonStyle.Render(fmt.Sprintf("Solved in %d/%d", m.board.SolvedAt(), m.board.Tries()))
	case game.StatusLost:
		return LostStyle.Render("Out of tries. The word was " + strings.ToUpper(m.board.Target()))
	default:
		return StatusStyle.Render(fmt.Sprintf("Try %d/%d", snap.Cursor.Row+1, m.board.Tries()))
	}
}
