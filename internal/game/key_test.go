package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    Key
		wantErr bool
	}{
		{in: "a", want: Letter('a')},
		{in: "Q", want: Letter('q')},
		{in: " z ", want: Letter('z')},
		{in: "enter", want: KeySubmit},
		{in: "SUBMIT", want: KeySubmit},
		{in: "clear", want: KeyClear},
		{in: "backspace", want: KeyClear},
		{in: "del", want: KeyClear},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: "1", wantErr: true},
		{in: "@", wantErr: true},
		{in: "[", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidKey), "err = %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyAccessors(t *testing.T) {
	assert.True(t, KeyClear.IsClear())
	assert.False(t, KeyClear.IsSubmit())
	assert.True(t, KeySubmit.IsSubmit())
	assert.Equal(t, "", KeySubmit.Letter())
	assert.Equal(t, "b", Letter('B').Letter())
	assert.Equal(t, "enter", KeySubmit.String())
	assert.Equal(t, "clear", KeyClear.String())
	assert.Equal(t, "k", Letter('k').String())
}
