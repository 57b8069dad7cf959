package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/ryff"
)

// adviceMaxAttempts bounds retries when the service reports itself
// temporarily unavailable.
const adviceMaxAttempts = 3

// DimensionAdvice generates encouraging, actionable advice for one
// wellbeing dimension, tailored to whether the score is low (under 50),
// average (50-69), or high (70 and up). A 503 from the service is retried
// with exponential backoff starting at one second and doubling, up to three
// attempts; any other error aborts immediately. When no usable response is
// obtained the result is a deterministic templated fallback embedding the
// dimension and score.
func (c *Client) DimensionAdvice(ctx context.Context, dimension string, score int) string {
	lang := c.locale.Language()
	content := contentFor(lang)
	label := ryff.DimensionLabel(lang, dimension)

	band := content.bandAverage
	switch {
	case score < 50:
		band = content.bandLow
	case score >= 70:
		band = content.bandHigh
	}
	prompt := fmt.Sprintf(content.advicePrompt, score, band, label, content.languageClause)

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.backoffInitial
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	var text string
	operation := func() error {
		out, err := c.generate(ctx, prompt)
		if err != nil {
			if retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		text = strings.TrimSpace(out)
		return nil
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, adviceMaxAttempts-1), ctx))
	if err != nil {
		c.log.Warn("dimension advice failed, using templated fallback",
			zap.String("dimension", dimension), zap.Error(err))
		return fmt.Sprintf(content.adviceFallback, label, score)
	}
	if text == "" {
		return content.defaultInsight
	}
	return text
}
