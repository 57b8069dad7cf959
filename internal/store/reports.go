package store

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

// MaxReports caps the report history; the oldest report by date is evicted
// when an insert overflows it.
const MaxReports = 10

// ReportStore persists the wellbeing report collection with the same
// load-full/mutate/save-full contract as EntryStore.
type ReportStore struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

func NewReportStore(kv KV, log *zap.Logger) *ReportStore {
	return &ReportStore{kv: kv, log: log}
}

// List returns all reports sorted by date, newest first.
func (s *ReportStore) List(ctx context.Context) []models.WellbeingReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the report with the given id.
func (s *ReportStore) Get(ctx context.Context, id string) (models.WellbeingReport, bool) {
	for _, r := range s.List(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return models.WellbeingReport{}, false
}

// Latest returns the most recent report, if any.
func (s *ReportStore) Latest(ctx context.Context) (models.WellbeingReport, bool) {
	reports := s.List(ctx)
	if len(reports) == 0 {
		return models.WellbeingReport{}, false
	}
	return reports[0], true
}

// Add inserts a new report, evicting the oldest by date when the capped
// history overflows.
func (s *ReportStore) Add(ctx context.Context, report models.WellbeingReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := append([]models.WellbeingReport{report}, s.load(ctx)...)
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Date.After(reports[j].Date)
	})
	if len(reports) > MaxReports {
		reports = reports[:MaxReports]
	}
	s.save(ctx, reports)
}

// Update replaces the report with a matching id, reporting whether it was
// found.
func (s *ReportStore) Update(ctx context.Context, report models.WellbeingReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := s.load(ctx)
	for i := range reports {
		if reports[i].ID == report.ID {
			reports[i] = report
			s.save(ctx, reports)
			return true
		}
	}
	return false
}

// Remove deletes the report with the given id, reporting whether it existed.
func (s *ReportStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := s.load(ctx)
	for i := range reports {
		if reports[i].ID == id {
			reports = append(reports[:i], reports[i+1:]...)
			s.save(ctx, reports)
			return true
		}
	}
	return false
}

func (s *ReportStore) load(ctx context.Context) []models.WellbeingReport {
	raw, found, err := s.kv.Get(ctx, KeyReports)
	if err != nil {
		s.log.Error("failed to read report history", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}
	var reports []models.WellbeingReport
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		s.log.Warn("corrupt report history data, starting empty", zap.Error(err))
		return nil
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Date.After(reports[j].Date)
	})
	return reports
}

func (s *ReportStore) save(ctx context.Context, reports []models.WellbeingReport) {
	data, err := json.Marshal(reports)
	if err != nil {
		s.log.Error("failed to encode report history", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, KeyReports, string(data)); err != nil {
		s.log.Error("failed to save report history", zap.Error(err))
	}
}
