// Package sentiment is the local, dependency-free fallback used when the
// external analysis service is unavailable: a keyword-based sentiment score
// and a randomized emotion profile derived from it.
package sentiment

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/adityawrm/mindbloom-backend/internal/models"
)

// Word lists cover both supported languages. Matching is substring-based and
// case-insensitive, so "happiness" counts via "happy".
var positiveWords = []string{
	"happy", "joy", "love", "great", "amazing", "wonderful", "excellent",
	"fantastic", "good", "beautiful", "perfect", "awesome", "brilliant",
	"grateful", "thankful", "blessed", "excited", "proud", "confident",
	"peaceful", "calm", "relaxed", "content", "satisfied", "accomplished",
	"successful", "optimistic", "hopeful", "inspired", "motivated",
	"senang", "gembira", "bahagia", "luar biasa", "hebat", "indah",
	"sempurna", "bersyukur", "bangga", "percaya diri", "tenang", "puas",
}

var negativeWords = []string{
	"sad", "angry", "hate", "terrible", "awful", "horrible", "bad", "worst",
	"depressed", "anxious", "worried", "stressed", "frustrated",
	"disappointed", "upset", "hurt", "pain", "difficult", "hard",
	"struggle", "problem", "issue", "concern", "fear", "scared", "nervous",
	"tired", "exhausted", "overwhelmed",
	"sedih", "marah", "benci", "buruk", "mengerikan", "depresi", "cemas",
	"khawatir", "stres", "frustrasi", "kecewa", "sakit", "sulit",
	"masalah", "takut", "lelah",
}

// Result is the fallback sentiment estimate for a piece of text.
type Result struct {
	Score int
	Label string
}

// Analyze tokenizes text on whitespace and counts tokens containing any
// positive or negative keyword. With no sentiment words the result is a
// neutral 50; otherwise the score is scaled into the 30-70 band by the
// positive ratio and labeled with the usual 60/40 thresholds.
func Analyze(text string) Result {
	words := strings.Fields(strings.ToLower(text))
	positive, negative := 0, 0
	for _, word := range words {
		if containsAny(word, positiveWords) {
			positive++
		}
		if containsAny(word, negativeWords) {
			negative++
		}
	}

	total := positive + negative
	if total == 0 {
		return Result{Score: 50, Label: models.LabelNeutral}
	}

	score := int(math.Round(30 + 40*float64(positive)/float64(total)))
	return Result{Score: score, Label: models.LabelForScore(score)}
}

func containsAny(word string, list []string) bool {
	for _, w := range list {
		if strings.Contains(word, w) {
			return true
		}
	}
	return false
}

// Rand is the source of randomness for emotion synthesis. It is an
// interface so tests can pin the jitter to a known sequence.
type Rand interface {
	Float64() float64
}

// lockedRand serializes access to a shared source. A bare *rand.Rand is
// not safe for concurrent use and emotion synthesis runs per request.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// defaultRand is used when callers pass a nil source.
var defaultRand Rand = &lockedRand{src: rand.New(rand.NewSource(rand.Int63()))}

// GenerateEmotions synthesizes a six-emotion profile from a sentiment score
// and label. Positive entries cluster the positive emotions near the score
// with jitter and keep the negative ones low; negative entries invert that;
// neutral entries draw every emotion from fixed mid-range bands. Output is
// intentionally non-deterministic unless a fixed Rand is supplied, and every
// value is clamped to 0-100.
func GenerateEmotions(score int, label string, rng Rand) models.Emotions {
	if rng == nil {
		rng = defaultRand
	}
	base := float64(score)

	var e models.Emotions
	switch label {
	case models.LabelPositive:
		e = models.Emotions{
			Joy:        clamp(base + rng.Float64()*15),
			Confidence: clamp(base + rng.Float64()*15 - 5),
			Gratitude:  clamp(base + rng.Float64()*15 + 5),
			Sadness:    clamp(20 - rng.Float64()*15),
			Anger:      clamp(15 - rng.Float64()*10),
			Fear:       clamp(10 - rng.Float64()*8),
		}
	case models.LabelNegative:
		e = models.Emotions{
			Joy:        clamp(30 - rng.Float64()*20),
			Confidence: clamp(25 - rng.Float64()*15),
			Gratitude:  clamp(20 - rng.Float64()*15),
			Sadness:    clamp(60 + rng.Float64()*30),
			Anger:      clamp(50 + rng.Float64()*25),
			Fear:       clamp(40 + rng.Float64()*20),
		}
	default:
		e = models.Emotions{
			Joy:        clamp(40 + rng.Float64()*20),
			Confidence: clamp(35 + rng.Float64()*20),
			Gratitude:  clamp(45 + rng.Float64()*20),
			Sadness:    clamp(20 + rng.Float64()*20),
			Anger:      clamp(15 + rng.Float64()*15),
			Fear:       clamp(10 + rng.Float64()*15),
		}
	}
	return e
}

func clamp(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
