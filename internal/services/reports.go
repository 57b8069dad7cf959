package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/ryff"
	"github.com/adityawrm/mindbloom-backend/internal/store"
)

// ErrUnknownDimension rejects advice or feedback addressed to a dimension
// key outside the six wellbeing dimensions.
var ErrUnknownDimension = errors.New("unknown wellbeing dimension")

// ReportAdvisor generates the per-dimension advice and the final summary
// for a report. Both calls always resolve to usable text, falling back to
// templates when the model is unreachable.
type ReportAdvisor interface {
	DimensionAdvice(ctx context.Context, dimension string, score int) string
	ReportSummary(ctx context.Context, scores map[string]int, feedbacks map[string]string) string
}

// ReportService owns the wellbeing report lifecycle: questionnaire
// submission, advice generation, feedback collection, and the one-shot
// summary that closes a report out.
type ReportService struct {
	store *store.ReportStore
	ai    ReportAdvisor
	log   *zap.Logger
	now   func() time.Time

	mu         sync.Mutex
	generating map[string]bool
}

func NewReportService(reports *store.ReportStore, ai ReportAdvisor, log *zap.Logger) *ReportService {
	return &ReportService{
		store:      reports,
		ai:         ai,
		log:        log,
		now:        time.Now,
		generating: make(map[string]bool),
	}
}

// List returns all reports, newest first.
func (s *ReportService) List(ctx context.Context) []models.WellbeingReport {
	return s.store.List(ctx)
}

// Get returns one report by id.
func (s *ReportService) Get(ctx context.Context, id string) (models.WellbeingReport, error) {
	report, ok := s.store.Get(ctx, id)
	if !ok {
		return models.WellbeingReport{}, ErrNotFound
	}
	return report, nil
}

// Latest returns the most recent report.
func (s *ReportService) Latest(ctx context.Context) (models.WellbeingReport, error) {
	report, ok := s.store.Latest(ctx)
	if !ok {
		return models.WellbeingReport{}, ErrNotFound
	}
	return report, nil
}

// Submit scores a completed questionnaire and stores the resulting
// report. Answers map question ids to 1..7 ratings; missing answers score
// as zero rather than failing the submission.
func (s *ReportService) Submit(ctx context.Context, answers map[int]int) models.WellbeingReport {
	report := models.WellbeingReport{
		ID:        uuid.NewString(),
		Date:      s.now(),
		Scores:    ryff.CalculateScores(answers),
		Advices:   map[string]string{},
		Feedbacks: map[string]string{},
	}
	s.store.Add(ctx, report)
	return report
}

// Delete removes a report by id.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if !s.store.Remove(ctx, id) {
		return ErrNotFound
	}
	return nil
}

// AdviceFor returns the advice text for one dimension of a report,
// generating and caching it on first request. Repeat calls serve the
// stored text without touching the model again.
func (s *ReportService) AdviceFor(ctx context.Context, id, dimension string) (string, error) {
	if !ryff.IsDimension(dimension) {
		return "", ErrUnknownDimension
	}
	report, ok := s.store.Get(ctx, id)
	if !ok {
		return "", ErrNotFound
	}
	if text, ok := report.Advices[dimension]; ok && text != "" {
		return text, nil
	}

	text := s.ai.DimensionAdvice(ctx, dimension, report.Scores.Map()[dimension])
	if err := s.RecordAdvice(ctx, id, dimension, text); err != nil {
		return "", err
	}
	return text, nil
}

// RecordAdvice stores advice text for one dimension. Overwrites are
// allowed so re-generation is idempotent from the caller's view.
func (s *ReportService) RecordAdvice(ctx context.Context, id, dimension, text string) error {
	if !ryff.IsDimension(dimension) {
		return ErrUnknownDimension
	}
	report, ok := s.store.Get(ctx, id)
	if !ok {
		return ErrNotFound
	}
	if report.Advices == nil {
		report.Advices = map[string]string{}
	}
	report.Advices[dimension] = text
	if !s.store.Update(ctx, report) {
		return ErrNotFound
	}
	return nil
}

// RecordFeedback stores the user's reflection on one dimension and then
// attempts the report summary, which only proceeds once every dimension
// has feedback.
func (s *ReportService) RecordFeedback(ctx context.Context, id, dimension, text string) (models.WellbeingReport, error) {
	if !ryff.IsDimension(dimension) {
		return models.WellbeingReport{}, ErrUnknownDimension
	}
	report, ok := s.store.Get(ctx, id)
	if !ok {
		return models.WellbeingReport{}, ErrNotFound
	}
	if report.Feedbacks == nil {
		report.Feedbacks = map[string]string{}
	}
	report.Feedbacks[dimension] = text
	if !s.store.Update(ctx, report) {
		return models.WellbeingReport{}, ErrNotFound
	}

	if _, err := s.MaybeGenerateSummary(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
		return models.WellbeingReport{}, err
	}

	updated, ok := s.store.Get(ctx, id)
	if !ok {
		return models.WellbeingReport{}, ErrNotFound
	}
	return updated, nil
}

// MaybeGenerateSummary generates the report summary at most once. It is a
// no-op when feedback is incomplete, a summary already exists, or another
// generation for the same report is in flight. The report is re-read
// after generation so a concurrent delete leaves nothing behind.
func (s *ReportService) MaybeGenerateSummary(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if s.generating[id] {
		s.mu.Unlock()
		return false, nil
	}
	report, ok := s.store.Get(ctx, id)
	if !ok {
		s.mu.Unlock()
		return false, ErrNotFound
	}
	if report.Summary != "" || !report.FeedbackComplete() {
		s.mu.Unlock()
		return false, nil
	}
	s.generating[id] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.generating, id)
		s.mu.Unlock()
	}()

	summary := s.ai.ReportSummary(ctx, report.Scores.Map(), report.Feedbacks)

	s.mu.Lock()
	defer s.mu.Unlock()
	fresh, ok := s.store.Get(ctx, id)
	if !ok {
		// Deleted while generating; drop the result.
		return false, nil
	}
	if fresh.Summary != "" {
		return false, nil
	}
	fresh.Summary = summary
	if !s.store.Update(ctx, fresh) {
		return false, nil
	}
	s.log.Info("report summary generated", zap.String("report_id", id))
	return true, nil
}
