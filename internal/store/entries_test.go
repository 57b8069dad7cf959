package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

func testEntry(id string, createdAt time.Time) models.JournalEntry {
	return models.JournalEntry{
		ID:             id,
		Content:        "entry " + id,
		SentimentScore: 50,
		SentimentLabel: models.LabelNeutral,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

func TestEntryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := NewEntryStore(kv, zap.NewNop())

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.Add(ctx, testEntry("a", base))
	s.Add(ctx, testEntry("b", base.Add(time.Hour)))

	entries := s.List(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID, "newest first")
	assert.Equal(t, "a", entries[1].ID)

	got, ok := s.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "entry a", got.Content)

	_, ok = s.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestEntryStoreUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewEntryStore(newMemKV(), zap.NewNop())

	entry := testEntry("a", time.Now())
	s.Add(ctx, entry)

	entry.Content = "rewritten"
	require.True(t, s.Update(ctx, entry))

	got, ok := s.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "rewritten", got.Content)

	assert.False(t, s.Update(ctx, testEntry("ghost", time.Now())))
}

func TestEntryStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := NewEntryStore(newMemKV(), zap.NewNop())

	s.Add(ctx, testEntry("a", time.Now()))
	require.True(t, s.Remove(ctx, "a"))
	assert.Empty(t, s.List(ctx))
	assert.False(t, s.Remove(ctx, "a"))
}

func TestEntryStoreCorruptData(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data[KeyEntries] = "{not json"
	s := NewEntryStore(kv, zap.NewNop())

	assert.Empty(t, s.List(ctx))

	// A write after corruption replaces the bad payload.
	s.Add(ctx, testEntry("a", time.Now()))
	assert.Len(t, s.List(ctx), 1)
}

func TestEntryStoreBackendDown(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.err = errKVDown
	s := NewEntryStore(kv, zap.NewNop())

	// Reads degrade to empty, writes are swallowed; neither panics.
	assert.Empty(t, s.List(ctx))
	s.Add(ctx, testEntry("a", time.Now()))
}
