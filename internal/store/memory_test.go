package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-grid/internal/game"
)

func newSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession("hello")
	require.NoError(t, err)
	return s
}

// board reads the stored board for id through View.
func board(st Store, id string) (*game.Board, error) {
	var got *game.Board
	err := st.View(context.Background(), id, func(b *game.Board) { got = b })
	return got, err
}

func TestMemory_SaveView(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)
	s := newSession(t)

	require.NoError(t, st.Save(ctx, s))
	got, err := board(st, s.ID)
	require.NoError(t, err)
	assert.Same(t, s.Board, got)
}

func TestMemory_ViewMissing(t *testing.T) {
	called := false
	err := NewMemoryStore(0).View(context.Background(), "nope", func(*game.Board) { called = true })
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, called)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	err := st.Update(ctx, s.ID, func(b *game.Board) error {
		b.HandleKey(game.Letter('h'))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "h", s.Board.Cell(0, 0))

	sentinel := errors.New("boom")
	err = st.Update(ctx, s.ID, func(b *game.Board) error { return sentinel })
	assert.Same(t, sentinel, err)

	err = st.Update(ctx, "nope", func(b *game.Board) error { return nil })
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_UpdateSerializesKeyPresses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID, func(b *game.Board) error {
				b.HandleKey(game.Letter('a'))
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, game.Cursor{Row: 0, Col: 5}, s.Board.Cursor())
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(0)
	s := newSession(t)
	require.NoError(t, st.Save(ctx, s))
	require.NoError(t, st.Delete(ctx, s.ID))
	require.NoError(t, st.Delete(ctx, s.ID))

	_, err := board(st, s.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_TTL(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore(time.Hour).(*memory)
	now := time.Now()
	st.now = func() time.Time { return now }

	old := newSession(t)
	old.CreatedAt = now.Add(-2 * time.Hour)
	fresh := newSession(t)
	fresh.CreatedAt = now

	require.NoError(t, st.Save(ctx, old))
	_, err := board(st, old.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, st.Save(ctx, fresh))
	_, err = board(st, fresh.ID)
	assert.NoError(t, err)

	st.mu.RLock()
	_, kept := st.sessions[old.ID]
	st.mu.RUnlock()
	assert.False(t, kept, "expired session should be swept on save")
}
