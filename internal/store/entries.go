package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

// EntryStore persists the journal entry collection. Every mutation follows
// the same contract: load the full collection fresh, mutate it in memory,
// and write the full collection back in a single key-value write. A mutex
// keeps concurrent read-modify-write cycles from interleaving; the last
// writer wins, which is the accepted model for this single-user store.
type EntryStore struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

func NewEntryStore(kv KV, log *zap.Logger) *EntryStore {
	return &EntryStore{kv: kv, log: log}
}

// List returns all entries sorted by creation time, newest first. Missing
// or corrupt stored data yields an empty collection and a log line, never
// an error to the caller.
func (s *EntryStore) List(ctx context.Context) []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the entry with the given id.
func (s *EntryStore) Get(ctx context.Context, id string) (models.JournalEntry, bool) {
	for _, e := range s.List(ctx) {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// Add inserts a new entry.
func (s *EntryStore) Add(ctx context.Context, entry models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append([]models.JournalEntry{entry}, s.load(ctx)...)
	s.save(ctx, entries)
}

// Update replaces the entry with a matching id and reports whether it was
// found. CreatedAt ordering is preserved since ids and timestamps are
// immutable.
func (s *EntryStore) Update(ctx context.Context, entry models.JournalEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load(ctx)
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			s.save(ctx, entries)
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given id, reporting whether it existed.
func (s *EntryStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load(ctx)
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			s.save(ctx, entries)
			return true
		}
	}
	return false
}

func (s *EntryStore) load(ctx context.Context) []models.JournalEntry {
	raw, found, err := s.kv.Get(ctx, KeyEntries)
	if err != nil {
		s.log.Error("failed to read journal entries", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	var entries []models.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.Warn("corrupt journal entry data, starting empty", zap.Error(err))
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries
}

// save replaces the stored collection. Write failures are logged and
// swallowed: the current request proceeds with its in-memory result and the
// previous stored state stays intact.
func (s *EntryStore) save(ctx context.Context, entries []models.JournalEntry) {
	data, err := json.Marshal(entries)
	if err != nil {
		s.log.Error("failed to encode journal entries", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, KeyEntries, string(data)); err != nil {
		s.log.Error("failed to save journal entries", zap.Error(err))
	}
}
