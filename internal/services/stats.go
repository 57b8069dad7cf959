package services

import (
	"context"
	"math"
	"time"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/store"
)

// Stats is the dashboard overview payload.
type Stats struct {
	EntryCount        int     `json:"entry_count"`
	CurrentStreak     int     `json:"current_streak"`
	LatestSentiment   int     `json:"latest_sentiment"`
	SentimentChange   float64 `json:"sentiment_change"`
	LatestReportScore float64 `json:"latest_report_score"`
	ReportScoreChange float64 `json:"report_score_change"`
	ReportCount       int     `json:"report_count"`
}

// StatsService derives dashboard numbers from the stored entries and
// reports. It holds no state of its own.
type StatsService struct {
	entries *store.EntryStore
	reports *store.ReportStore
	now     func() time.Time
}

func NewStatsService(entries *store.EntryStore, reports *store.ReportStore) *StatsService {
	return &StatsService{entries: entries, reports: reports, now: time.Now}
}

// Overview assembles the full dashboard snapshot.
func (s *StatsService) Overview(ctx context.Context) Stats {
	entries := s.entries.List(ctx)
	reports := s.reports.List(ctx)

	stats := Stats{
		EntryCount:    len(entries),
		CurrentStreak: CurrentStreak(entries, s.now()),
		ReportCount:   len(reports),
	}
	if len(entries) > 0 {
		stats.LatestSentiment = entries[0].SentimentScore
		if len(entries) > 1 {
			stats.SentimentChange = percentChange(
				float64(entries[0].SentimentScore),
				float64(entries[1].SentimentScore),
			)
		}
	}
	if len(reports) > 0 {
		stats.LatestReportScore = reports[0].Scores.Average()
		if len(reports) > 1 {
			stats.ReportScoreChange = percentChange(
				reports[0].Scores.Average(),
				reports[1].Scores.Average(),
			)
		}
	}
	return stats
}

// percentChange is (current-previous)/previous*100 rounded to one
// decimal. A zero baseline reports zero change instead of infinity.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}

// CurrentStreak counts consecutive days with at least one entry, walking
// back from today. A streak whose latest entry was yesterday still
// counts; anything older breaks it. Entries arrive newest first.
func CurrentStreak(entries []models.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.CreatedAt.Format("2006-01-02")] = true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today
	if !days[start.Format("2006-01-02")] {
		start = today.AddDate(0, 0, -1)
		if !days[start.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for d := start; days[d.Format("2006-01-02")]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
