// internal/game/types.go
//
// Core type definitions for the guess grid.
// Defines:
//   - Classification: per-cell color state (unrevealed/correct/present/absent).
//   - Key: a single key press (letter, clear or submit).
//   - Cursor, CellView, Hints, Snapshot: derived outputs read by renderers.
//   - Session: a Board bound to an identifier for the HTTP store.

package game

import "time"

// Classification is the color state assigned to a grid cell.
// Possible values:
//   - "unrevealed": the cell's row has not been submitted yet.
//   - "correct":    letter matches the target at the same column.
//   - "present":    letter occurs elsewhere in the target.
//   - "absent":     letter does not occur in the target.
type Classification string

const (
	Unrevealed Classification = "unrevealed"
	Correct    Classification = "correct"
	Present    Classification = "present"
	Absent     Classification = "absent"
)

// Status is a coarse, derived view of the session. It never gates input
// except through the row bound.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Scoring selects how non-matching letters are classified.
type Scoring string

const (
	// ScoringMembership marks a letter present whenever it occurs anywhere
	// in the target. Repeated guess letters can all be reported present.
	ScoringMembership Scoring = "membership"
	// ScoringFrequency marks presents only while unmatched target letters
	// remain, so repeated letters are not over-reported.
	ScoringFrequency Scoring = "frequency"
)

type keyKind uint8

const (
	kindLetter keyKind = iota
	kindClear
	kindSubmit
)

// Key is one key press delivered by a keyboard renderer.
type Key struct {
	kind   keyKind
	letter string
}

var (
	KeyClear  = Key{kind: kindClear}
	KeySubmit = Key{kind: kindSubmit}
)

// Cursor is the (row, col) position receiving the next keystroke.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellView is the per-cell tuple consumed by the grid renderers.
type CellView struct {
	Text   string         `json:"text"`
	Class  Classification `json:"class"`
	Active bool           `json:"active"`
}

// Hints are the keyboard tint sets, one per revealed classification.
type Hints struct {
	Correct []string `json:"correct"`
	Present []string `json:"present"`
	Absent  []string `json:"absent"`
}

// Snapshot is a full read of the board at one instant.
type Snapshot struct {
	Rows   [][]CellView `json:"rows"`
	Cursor Cursor       `json:"cursor"`
	Status Status       `json:"status"`
	Hints  Hints        `json:"hints"`
}

// Session holds one board together with its identifier.
type Session struct {
	ID        string    // Unique session identifier (random hex string).
	Board     *Board    // Grid state; only mutated through HandleKey.
	CreatedAt time.Time // UTC creation time.
}
