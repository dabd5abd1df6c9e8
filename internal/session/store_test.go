package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davolio/osteria-reservations/internal/picker"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	st := picker.New(2022, 6)
	st.SelectedDate = "2022-06-15"

	require.NoError(t, s.Save(ctx, "abc", st))

	got, err := s.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestMemoryStore_MissingSession(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	now := time.Date(2022, time.June, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(context.Background(), "abc", picker.New(2022, 6)))

	now = now.Add(2 * time.Minute)
	_, err := s.Load(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc", picker.New(2022, 6)))
	require.NoError(t, s.Delete(ctx, "abc"))

	_, err := s.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}
