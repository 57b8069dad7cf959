package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/models"
	"github.com/adityawrm/mindbloom-backend/internal/sentiment"
)

// Analysis is the result of scoring one journal entry, whether it came from
// the model or the local fallback.
type Analysis struct {
	SentimentScore int
	SentimentLabel string
	Emotions       models.Emotions
	Insights       string
}

// analysisPayload mirrors the JSON object the model is asked to produce.
type analysisPayload struct {
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
	Emotions       struct {
		Joy        float64 `json:"joy"`
		Confidence float64 `json:"confidence"`
		Gratitude  float64 `json:"gratitude"`
		Sadness    float64 `json:"sadness"`
		Anger      float64 `json:"anger"`
		Fear       float64 `json:"fear"`
	} `json:"emotions"`
	Insights string `json:"insights"`
}

// AnalyzeEntry scores a journal entry's sentiment and emotions. The model
// response may arrive wrapped in markdown fences; it is unwrapped, parsed,
// and every numeric field clamped to 0-100. Any failure along the way
// (network, non-2xx, parse error, malformed shape) falls back to the local
// keyword analyzer with synthesized emotions; the original error is logged
// and never surfaces to the caller.
func (c *Client) AnalyzeEntry(ctx context.Context, text string) Analysis {
	lang := c.locale.Language()
	content := contentFor(lang)
	prompt := fmt.Sprintf(content.analysisPrompt, text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("entry analysis failed, using local fallback", zap.Error(err))
		return c.fallbackAnalysis(text, content)
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		c.log.Warn("unparseable analysis response, using local fallback", zap.Error(err))
		return c.fallbackAnalysis(text, content)
	}
	switch payload.SentimentLabel {
	case models.LabelPositive, models.LabelNeutral, models.LabelNegative:
	default:
		c.log.Warn("analysis response carried an unknown sentiment label, using local fallback",
			zap.String("label", payload.SentimentLabel))
		return c.fallbackAnalysis(text, content)
	}

	insights := payload.Insights
	if insights == "" {
		insights = content.defaultInsight
	}

	return Analysis{
		SentimentScore: clampScore(payload.SentimentScore),
		SentimentLabel: payload.SentimentLabel,
		Emotions: models.Emotions{
			Joy:        clampScore(payload.Emotions.Joy),
			Confidence: clampScore(payload.Emotions.Confidence),
			Gratitude:  clampScore(payload.Emotions.Gratitude),
			Sadness:    clampScore(payload.Emotions.Sadness),
			Anger:      clampScore(payload.Emotions.Anger),
			Fear:       clampScore(payload.Emotions.Fear),
		},
		Insights: insights,
	}
}

func (c *Client) fallbackAnalysis(text string, content languageContent) Analysis {
	res := sentiment.Analyze(text)
	return Analysis{
		SentimentScore: res.Score,
		SentimentLabel: res.Label,
		Emotions:       sentiment.GenerateEmotions(res.Score, res.Label, c.rng),
		Insights:       content.fallbackInsights[res.Label],
	}
}

func clampScore(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
