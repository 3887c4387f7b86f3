package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned by ParseKey for tokens that are neither an
// action nor a single a–z letter.
var ErrInvalidKey = errors.New("invalid key")

// Letter returns the key for a single letter. Uppercase input is folded.
func Letter(r rune) Key {
	return Key{kind: kindLetter, letter: strings.ToLower(string(r))}
}

// ParseKey converts a renderer token into a Key.
// Accepted tokens:
//   - "clear", "backspace", "del", "delete" → KeyClear
//   - "enter", "submit"                     → KeySubmit
//   - a single letter a–z / A–Z             → Letter
func ParseKey(s string) (Key, error) {
	tok := strings.TrimSpace(s)
	switch strings.ToLower(tok) {
	case "clear", "backspace", "del", "delete":
		return KeyClear, nil
	case "enter", "submit":
		return KeySubmit, nil
	}
	if len(tok) == 1 {
		c := tok[0] | 0x20 // ASCII fold to lowercase
		if c >= 'a' && c <= 'z' {
			return Letter(rune(c)), nil
		}
	}
	return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
}

func (k Key) IsClear() bool  { return k.kind == kindClear }
func (k Key) IsSubmit() bool { return k.kind == kindSubmit }

// Letter returns the lowercase letter carried by a letter key, or "".
func (k Key) Letter() string {
	if k.kind != kindLetter {
		return ""
	}
	return k.letter
}

func (k Key) String() string {
	switch k.kind {
	case kindClear:
		return "clear"
	case kindSubmit:
		return "enter"
	default:
		return k.letter
	}
}
