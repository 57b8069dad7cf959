// Package ryff implements the 42-item Ryff Psychological Wellbeing Scale:
// the question bank in both supported languages, reverse-item handling, and
// normalization of raw dimension sums into percentage scores.
package ryff

import (
	"math"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

// Ratings run 1..7 (Strongly Disagree .. Strongly Agree). Each dimension is
// covered by exactly 7 questions, so raw sums range 7..49.
const (
	MinRating = 1
	MaxRating = 7

	rawMin = 7
	rawMax = 49
)

// reverseScored lists the negatively phrased items whose rating is inverted
// (8 - rating) before aggregation.
var reverseScored = map[int]bool{
	5: true, 8: true, 9: true, 10: true, 12: true, 14: true, 15: true,
	16: true, 18: true, 19: true, 24: true, 25: true, 26: true, 28: true,
	30: true, 32: true, 33: true, 34: true, 39: true, 41: true, 42: true,
}

// dimensionQuestions maps each dimension key to its 7 question ids.
var dimensionQuestions = map[string][]int{
	models.DimAutonomy:             {1, 13, 24, 35, 41, 10, 21},
	models.DimEnvironmentalMastery: {3, 15, 26, 36, 42, 12, 23},
	models.DimPersonalGrowth:       {5, 17, 28, 37, 2, 14, 25},
	models.DimPositiveRelations:    {7, 18, 30, 38, 4, 16, 27},
	models.DimPurposeInLife:        {9, 20, 32, 39, 6, 29, 33},
	models.DimSelfAcceptance:       {11, 22, 34, 40, 8, 19, 31},
}

// Dimensions returns the six dimension keys in a stable order.
func Dimensions() []string {
	return []string{
		models.DimAutonomy,
		models.DimEnvironmentalMastery,
		models.DimPersonalGrowth,
		models.DimPositiveRelations,
		models.DimPurposeInLife,
		models.DimSelfAcceptance,
	}
}

// IsDimension reports whether key names one of the six wellbeing dimensions.
func IsDimension(key string) bool {
	_, ok := dimensionQuestions[key]
	return ok
}

// CalculateScores converts raw questionnaire answers (question id -> rating
// 1..7) into normalized per-dimension percentages. Reverse-scored items are
// inverted first, each dimension's 7 ratings are summed, and the raw sum is
// mapped so that 7 -> 0% and 49 -> 100%. Unanswered questions contribute 0
// to their dimension's sum; the function never panics on partial input.
func CalculateScores(answers map[int]int) models.RyffScores {
	sums := make(map[string]int, len(dimensionQuestions))
	for dim, ids := range dimensionQuestions {
		total := 0
		for _, id := range ids {
			rating, ok := answers[id]
			if !ok || rating < MinRating || rating > MaxRating {
				continue
			}
			if reverseScored[id] {
				rating = 8 - rating
			}
			total += rating
		}
		sums[dim] = total
	}

	return models.RyffScores{
		Autonomy:             normalize(sums[models.DimAutonomy]),
		EnvironmentalMastery: normalize(sums[models.DimEnvironmentalMastery]),
		PersonalGrowth:       normalize(sums[models.DimPersonalGrowth]),
		PositiveRelations:    normalize(sums[models.DimPositiveRelations]),
		PurposeInLife:        normalize(sums[models.DimPurposeInLife]),
		SelfAcceptance:       normalize(sums[models.DimSelfAcceptance]),
	}
}

// normalize maps a raw dimension sum onto 0..100. Sums below 7 (possible
// only with missing answers) clamp to 0 rather than going negative.
func normalize(raw int) int {
	pct := math.Round(float64(raw-rawMin) / float64(rawMax-rawMin) * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}
