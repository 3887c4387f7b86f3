// internal/game/engine.go
//
// Guess grid controller for a single word-guessing session.
// Responsibilities:
//   - Own the grid (tries × word length), the cursor and the target.
//   - Apply key presses: clear, submit and letters.
//   - Classify cells freshly on every read (never cached).
//   - Derive keyboard tint sets and a coarse playing/won/lost status.
//
// Notes:
//   - Every row is its own slice; rows never alias each other.
//   - Invalid actions are silent no-ops; HandleKey only reports whether
//     the state changed.
//   - Once the cursor row reaches the number of tries, input is frozen.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	DefaultTries  = 6
	DefaultTarget = "hello"
)

// ErrInvalidTarget is returned by New for empty or non a–z targets.
var ErrInvalidTarget = errors.New("invalid target")

// Board is the guess grid controller. It is not safe for concurrent use;
// callers serialize key presses.
type Board struct {
	target  string
	letters []string
	tries   int
	scoring Scoring

	rows [][]string
	row  int
	col  int
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithTries sets the number of rows in the grid.
func WithTries(n int) Option { return func(b *Board) { b.tries = n } }

// WithScoring selects the classification policy for non-matching letters.
func WithScoring(s Scoring) Option { return func(b *Board) { b.scoring = s } }

// New constructs a board for target. The target is lowercased and must be
// non-empty a–z.
func New(target string, opts ...Option) (*Board, error) {
	t := strings.ToLower(strings.TrimSpace(target))
	if t == "" || !isAlpha(t) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	b := &Board{
		target:  t,
		letters: strings.Split(t, ""),
		tries:   DefaultTries,
		scoring: ScoringMembership,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.tries < 1 {
		return nil, fmt.Errorf("tries must be positive, got %d", b.tries)
	}
	switch b.scoring {
	case ScoringMembership, ScoringFrequency:
	default:
		return nil, fmt.Errorf("unknown scoring %q", b.scoring)
	}

	b.rows = make([][]string, b.tries)
	for i := range b.rows {
		b.rows[i] = make([]string, len(b.letters))
	}
	return b, nil
}

// NewSession wraps a fresh board in a Session with a random ID.
func NewSession(target string, opts ...Option) (*Session, error) {
	b, err := New(target, opts...)
	if err != nil {
		return nil, err
	}
	return &Session{ID: randomID(), Board: b, CreatedAt: time.Now().UTC()}, nil
}

// HandleKey applies one key press and reports whether the board changed.
//
//   - Clear:  if col > 0, empty (row, col-1) and step back.
//   - Submit: if the row is full, move to the next row at column 0.
//   - Letter: if the row has room, write the letter and step forward.
//     Letters outside a–z are ignored.
//
// All other cases are silent no-ops.
func (b *Board) HandleKey(k Key) bool {
	if b.row >= b.tries {
		return false
	}
	switch {
	case k.IsClear():
		if b.col == 0 {
			return false
		}
		b.col--
		b.rows[b.row][b.col] = ""
		return true

	case k.IsSubmit():
		if b.col != b.WordLength() {
			return false
		}
		b.row++
		b.col = 0
		return true

	default:
		l := k.Letter()
		if len(l) != 1 || !isAlpha(l) || b.col >= b.WordLength() {
			return false
		}
		b.rows[b.row][b.col] = l
		b.col++
		return true
	}
}

// CellColor classifies the cell at (row, col). Rows at or past the cursor
// row are unrevealed.
func (b *Board) CellColor(row, col int) Classification {
	if row >= b.row || row < 0 || col < 0 || col >= b.WordLength() {
		return Unrevealed
	}
	if b.scoring == ScoringFrequency {
		return scoreFrequency(b.letters, b.rows[row])[col]
	}
	return scoreMembership(b.letters, b.rows[row][col], col)
}

// IsActiveCell reports whether (row, col) is the cursor position.
func (b *Board) IsActiveCell(row, col int) bool {
	return row == b.row && col == b.col
}

// KeyboardHints returns the letters across the whole grid currently
// classified c, deduplicated in first-seen order.
func (b *Board) KeyboardHints(c Classification) []string {
	var out []string
	for i, row := range b.rows {
		for j, cell := range row {
			if cell != "" && b.CellColor(i, j) == c {
				out = append(out, cell)
			}
		}
	}
	return lo.Uniq(out)
}

// Cell returns the letter at (row, col), or "" when empty or out of range.
func (b *Board) Cell(row, col int) string {
	if row < 0 || row >= b.tries || col < 0 || col >= b.WordLength() {
		return ""
	}
	return b.rows[row][col]
}

func (b *Board) Cursor() Cursor { return Cursor{Row: b.row, Col: b.col} }

// Tries is the number of rows in the grid.
func (b *Board) Tries() int { return b.tries }

// WordLength is the number of cells per row.
func (b *Board) WordLength() int { return len(b.letters) }

func (b *Board) Target() string { return b.target }

func (b *Board) ScoringMode() Scoring { return b.scoring }

// SolvedAt returns the 1-based number of the first submitted row that
// matches the target, or 0 if none does.
func (b *Board) SolvedAt() int {
	for i := 0; i < b.row; i++ {
		if strings.Join(b.rows[i], "") == b.target {
			return i + 1
		}
	}
	return 0
}

// Status derives won/lost from the submitted rows. Any submitted row
// matching the target is a win, even if more rows were submitted after it.
func (b *Board) Status() Status {
	if b.SolvedAt() > 0 {
		return StatusWon
	}
	if b.row >= b.tries {
		return StatusLost
	}
	return StatusPlaying
}

// Snapshot reads every derived output in one pass.
func (b *Board) Snapshot() Snapshot {
	rows := make([][]CellView, b.tries)
	for i := range rows {
		rows[i] = make([]CellView, b.WordLength())
		for j := range rows[i] {
			rows[i][j] = CellView{
				Text:   b.rows[i][j],
				Class:  b.CellColor(i, j),
				Active: b.IsActiveCell(i, j),
			}
		}
	}
	return Snapshot{
		Rows:   rows,
		Cursor: b.Cursor(),
		Status: b.Status(),
		Hints: Hints{
			Correct: b.KeyboardHints(Correct),
			Present: b.KeyboardHints(Present),
			Absent:  b.KeyboardHints(Absent),
		},
	}
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
