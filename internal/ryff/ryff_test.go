package ryff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allAnswers(rating int) map[int]int {
	answers := make(map[int]int, 42)
	for id := 1; id <= 42; id++ {
		answers[id] = rating
	}
	return answers
}

func TestCalculateScoresNeutral(t *testing.T) {
	// A flat 4 on every item is the scale midpoint regardless of
	// reverse scoring, so every dimension lands on exactly 50.
	scores := CalculateScores(allAnswers(4))
	for dim, score := range scores.Map() {
		assert.Equal(t, 50, score, "dimension %s", dim)
	}
}

func TestCalculateScoresMaximum(t *testing.T) {
	// 7 on straight items and 1 on reversed items both contribute the
	// maximum per-item score.
	answers := allAnswers(7)
	for id := range reverseScored {
		answers[id] = 1
	}
	scores := CalculateScores(answers)
	for dim, score := range scores.Map() {
		assert.Equal(t, 100, score, "dimension %s", dim)
	}
}

func TestCalculateScoresMinimum(t *testing.T) {
	answers := allAnswers(1)
	for id := range reverseScored {
		answers[id] = 7
	}
	scores := CalculateScores(answers)
	for dim, score := range scores.Map() {
		assert.Equal(t, 0, score, "dimension %s", dim)
	}
}

func TestCalculateScoresMissingAnswers(t *testing.T) {
	// Unanswered items contribute zero instead of failing, so a
	// partial questionnaire still scores but lands low.
	scores := CalculateScores(map[int]int{1: 7})
	full := CalculateScores(allAnswers(7))

	assert.Greater(t, full.Autonomy, scores.Autonomy)
	assert.Equal(t, 0, scores.EnvironmentalMastery)
}

func TestCalculateScoresEmpty(t *testing.T) {
	scores := CalculateScores(nil)
	for dim, score := range scores.Map() {
		assert.Equal(t, 0, score, "dimension %s", dim)
	}
}

func TestDimensionsStable(t *testing.T) {
	dims := Dimensions()
	require.Len(t, dims, 6)
	assert.Equal(t, dims, Dimensions())
	for _, dim := range dims {
		assert.True(t, IsDimension(dim))
	}
	assert.False(t, IsDimension("resilience"))
}

func TestQuestionCoverage(t *testing.T) {
	// Every dimension owns exactly 7 of the 42 items and no item is
	// shared between dimensions.
	seen := make(map[int]string)
	for dim, ids := range dimensionQuestions {
		assert.Len(t, ids, 7, "dimension %s", dim)
		for _, id := range ids {
			require.GreaterOrEqual(t, id, 1)
			require.LessOrEqual(t, id, 42)
			prev, dup := seen[id]
			require.False(t, dup, "question %d in both %s and %s", id, prev, dim)
			seen[id] = dim
		}
	}
	assert.Len(t, seen, 42)
}

func TestQuestionsLocalized(t *testing.T) {
	en := Questions("en")
	id := Questions("id")
	require.Len(t, en, 42)
	require.Len(t, id, 42)

	for i := range en {
		assert.Equal(t, en[i].ID, id[i].ID)
		assert.Equal(t, en[i].Dimension, id[i].Dimension)
		assert.NotEmpty(t, en[i].Text)
		assert.NotEmpty(t, id[i].Text)
	}

	// Unknown languages fall back to English.
	assert.Equal(t, en, Questions("fr"))
}

func TestDimensionLabel(t *testing.T) {
	assert.Equal(t, "Self-Acceptance", DimensionLabel("en", "selfAcceptance"))
	assert.Equal(t, "Penerimaan Diri", DimensionLabel("id", "selfAcceptance"))
	// Unknown dimensions pass through as-is.
	assert.Equal(t, "bogus", DimensionLabel("en", "bogus"))
}
