package models

import "time"

// Emotions holds the six tracked emotion intensities, each on a 0-100 scale.
type Emotions struct {
	Joy        int `json:"joy"`
	Confidence int `json:"confidence"`
	Gratitude  int `json:"gratitude"`
	Sadness    int `json:"sadness"`
	Anger      int `json:"anger"`
	Fear       int `json:"fear"`
}

// Sentiment labels derived from the 0-100 sentiment score.
const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// LabelForScore maps a sentiment score to its label: positive at 60 and
// above, negative at 40 and below, neutral in between.
func LabelForScore(score int) string {
	switch {
	case score >= 60:
		return LabelPositive
	case score <= 40:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// JournalEntry represents a single private journal entry together with its
// sentiment analysis. CreatedAt and ID are immutable after creation;
// everything else is regenerated when the entry is edited.
type JournalEntry struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	SentimentScore int       `json:"sentiment_score"`
	SentimentLabel string    `json:"sentiment_label"`
	Emotions       Emotions  `json:"emotions"`
	WordCount      int       `json:"word_count"`
	CharacterCount int       `json:"character_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	AIInsights     string    `json:"ai_insights,omitempty"`
}
