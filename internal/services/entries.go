// Package services holds the application logic between the HTTP handlers
// and the persistence layer: entry save/update orchestration, the report
// lifecycle controller, and dashboard statistics.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/gemini"
	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/store"
)

var (
	// ErrEmptyContent rejects saves with no usable text; the operation is
	// a no-op.
	ErrEmptyContent = errors.New("content must not be empty")
	// ErrNotFound signals an update or delete against a record that does
	// not exist; no partial state is mutated.
	ErrNotFound = errors.New("record not found")
)

// EntryAnalyzer produces a sentiment analysis for entry text. It never
// fails: the AI layer resolves every call to either a model result or the
// local fallback.
type EntryAnalyzer interface {
	AnalyzeEntry(ctx context.Context, text string) gemini.Analysis
}

// EntryService owns the journal entry lifecycle.
type EntryService struct {
	store *store.EntryStore
	ai    EntryAnalyzer
	log   *zap.Logger
	now   func() time.Time
}

func NewEntryService(entries *store.EntryStore, ai EntryAnalyzer, log *zap.Logger) *EntryService {
	return &EntryService{store: entries, ai: ai, log: log, now: time.Now}
}

// List returns all entries, newest first.
func (s *EntryService) List(ctx context.Context) []models.JournalEntry {
	return s.store.List(ctx)
}

// Get returns one entry by id.
func (s *EntryService) Get(ctx context.Context, id string) (models.JournalEntry, error) {
	entry, ok := s.store.Get(ctx, id)
	if !ok {
		return models.JournalEntry{}, ErrNotFound
	}
	return entry, nil
}

// Add analyzes and persists a new entry. Content must be non-empty after
// trimming; word and character counts are derived from it at save time.
func (s *EntryService) Add(ctx context.Context, content string) (models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrEmptyContent
	}

	analysis := s.ai.AnalyzeEntry(ctx, content)
	now := s.now()
	entry := models.JournalEntry{
		ID:             uuid.NewString(),
		Content:        content,
		SentimentScore: analysis.SentimentScore,
		SentimentLabel: analysis.SentimentLabel,
		Emotions:       analysis.Emotions,
		WordCount:      len(strings.Fields(content)),
		CharacterCount: utf8.RuneCountInString(content),
		CreatedAt:      now,
		UpdatedAt:      now,
		AIInsights:     analysis.Insights,
	}
	s.store.Add(ctx, entry)
	return entry, nil
}

// Update re-analyzes an existing entry with new content. The id and
// creation time are preserved; every derived field is regenerated and
// UpdatedAt refreshed.
func (s *EntryService) Update(ctx context.Context, id, content string) (models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrEmptyContent
	}
	entry, ok := s.store.Get(ctx, id)
	if !ok {
		return models.JournalEntry{}, ErrNotFound
	}

	analysis := s.ai.AnalyzeEntry(ctx, content)
	entry.Content = content
	entry.SentimentScore = analysis.SentimentScore
	entry.SentimentLabel = analysis.SentimentLabel
	entry.Emotions = analysis.Emotions
	entry.WordCount = len(strings.Fields(content))
	entry.CharacterCount = utf8.RuneCountInString(content)
	entry.UpdatedAt = s.now()
	entry.AIInsights = analysis.Insights

	if !s.store.Update(ctx, entry) {
		return models.JournalEntry{}, ErrNotFound
	}
	return entry, nil
}

// Delete removes an entry by id.
func (s *EntryService) Delete(ctx context.Context, id string) error {
	if !s.store.Remove(ctx, id) {
		return ErrNotFound
	}
	return nil
}
