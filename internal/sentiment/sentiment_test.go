package sentiment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

func TestAnalyzePositiveOnly(t *testing.T) {
	// All-positive hits give 30 + 40*1 = 70.
	res := Analyze("what a happy wonderful day")
	assert.Equal(t, 70, res.Score)
	assert.Equal(t, models.LabelPositive, res.Label)
}

func TestAnalyzeNegativeOnly(t *testing.T) {
	// All-negative hits give 30 + 40*0 = 30.
	res := Analyze("terrible awful day, everything is bad")
	assert.Equal(t, 30, res.Score)
	assert.Equal(t, models.LabelNegative, res.Label)
}

func TestAnalyzeNoSentimentWords(t *testing.T) {
	res := Analyze("the meeting is at noon on Tuesday")
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, models.LabelNeutral, res.Label)
}

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze("")
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, models.LabelNeutral, res.Label)
}

func TestAnalyzeMixed(t *testing.T) {
	// One positive, one negative: 30 + 40*0.5 = 50, neutral.
	res := Analyze("happy but tired")
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, models.LabelNeutral, res.Label)
}

func TestAnalyzeSubstringMatch(t *testing.T) {
	// "happiness" counts through "happy" and casing is ignored.
	res := Analyze("HAPPINESS")
	assert.Equal(t, 70, res.Score)
	assert.Equal(t, models.LabelPositive, res.Label)
}

func TestAnalyzeIndonesian(t *testing.T) {
	res := Analyze("hari ini aku sangat bahagia dan bersyukur")
	assert.Equal(t, 70, res.Score)
	assert.Equal(t, models.LabelPositive, res.Label)
}

// zeroRand pins all jitter to zero so band formulas are exact.
type zeroRand struct{}

func (zeroRand) Float64() float64 { return 0 }

func TestGenerateEmotionsPositiveExact(t *testing.T) {
	e := GenerateEmotions(70, models.LabelPositive, zeroRand{})
	assert.Equal(t, models.Emotions{
		Joy:        70,
		Confidence: 65,
		Gratitude:  75,
		Sadness:    20,
		Anger:      15,
		Fear:       10,
	}, e)
}

func TestGenerateEmotionsNegativeExact(t *testing.T) {
	e := GenerateEmotions(30, models.LabelNegative, zeroRand{})
	assert.Equal(t, models.Emotions{
		Joy:        30,
		Confidence: 25,
		Gratitude:  20,
		Sadness:    60,
		Anger:      50,
		Fear:       40,
	}, e)
}

func TestGenerateEmotionsNeutralExact(t *testing.T) {
	e := GenerateEmotions(50, models.LabelNeutral, zeroRand{})
	assert.Equal(t, models.Emotions{
		Joy:        40,
		Confidence: 35,
		Gratitude:  45,
		Sadness:    20,
		Anger:      15,
		Fear:       10,
	}, e)
}

// maxRand drives every jitter term to its band edge to exercise clamping.
type maxRand struct{}

func (maxRand) Float64() float64 { return 1 }

func TestGenerateEmotionsClamped(t *testing.T) {
	e := GenerateEmotions(95, models.LabelPositive, maxRand{})
	assert.Equal(t, 100, e.Joy)
	assert.Equal(t, 100, e.Gratitude)
	assert.LessOrEqual(t, e.Sadness, 100)
	assert.GreaterOrEqual(t, e.Fear, 0)

	low := GenerateEmotions(5, models.LabelNegative, maxRand{})
	assert.Equal(t, 5, low.Gratitude)
	assert.Equal(t, 10, low.Joy)
}

func TestGenerateEmotionsDefaultSourceInRange(t *testing.T) {
	for i := 0; i < 50; i++ {
		e := GenerateEmotions(55, models.LabelPositive, nil)
		for _, v := range []int{e.Joy, e.Confidence, e.Gratitude, e.Sadness, e.Anger, e.Fear} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
		assert.Greater(t, e.Joy, e.Anger)
	}
}

// The shared default source must hold up when several entries are analyzed
// at once. Run with -race.
func TestGenerateEmotionsDefaultSourceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				e := GenerateEmotions(70, models.LabelPositive, nil)
				if e.Joy < 0 || e.Joy > 100 {
					t.Errorf("joy out of range: %d", e.Joy)
				}
			}
		}()
	}
	wg.Wait()
}
