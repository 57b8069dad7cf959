package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/ryff"
)

// ReportSummary generates the cross-dimension wellbeing summary from the
// six scores and the user's per-dimension feedback. The prompt instructs the
// model to weight lower scores more heavily, cap the length, and refer to
// dimensions by their human-readable names. On any failure the result is a
// short localized "summary unavailable" message.
func (c *Client) ReportSummary(ctx context.Context, scores map[string]int, feedbacks map[string]string) string {
	lang := c.locale.Language()
	content := contentFor(lang)

	var lines []string
	for _, dim := range ryff.Dimensions() {
		feedback := feedbacks[dim]
		if feedback == "" {
			feedback = "-"
		}
		lines = append(lines, fmt.Sprintf("%s: %d/100\nUser feedback: %s",
			ryff.DimensionLabel(lang, dim), scores[dim], feedback))
	}
	prompt := fmt.Sprintf(content.summaryPrompt, summaryLanguageClause(lang), strings.Join(lines, "\n\n"))

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("report summary generation failed", zap.Error(err))
		return content.summaryUnavailable
	}
	summary := strings.TrimSpace(out)
	if summary == "" {
		return content.summaryUnavailable
	}
	return summary
}

// insightsWindow is how many recent entries feed the journal insight.
const insightsWindow = 5

// JournalInsights generates an encouraging insight over the most recent
// journal entries (count, average sentiment, date range, short excerpts).
// With no entries it returns the localized journey message; on failure, the
// localized consistent-practice message.
func (c *Client) JournalInsights(ctx context.Context, entries []models.JournalEntry) string {
	lang := c.locale.Language()
	content := contentFor(lang)

	if len(entries) == 0 {
		return content.journeyInsight
	}

	recent := entries
	if len(recent) > insightsWindow {
		recent = recent[:insightsWindow]
	}

	total := 0
	var excerpts []string
	for i, entry := range recent {
		total += entry.SentimentScore
		excerpts = append(excerpts, fmt.Sprintf("%d. %q...", i+1, excerpt(entry.Content, 100)))
	}
	average := float64(total) / float64(len(recent))

	prompt := fmt.Sprintf(content.insightsPrompt,
		len(recent),
		average,
		recent[len(recent)-1].CreatedAt.Format("2006-01-02"),
		recent[0].CreatedAt.Format("2006-01-02"),
		strings.Join(excerpts, "\n"))

	out, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("journal insights generation failed", zap.Error(err))
		return content.consistentPractice
	}
	insight := strings.TrimSpace(out)
	if insight == "" {
		return content.reflectionInsight
	}
	return insight
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
