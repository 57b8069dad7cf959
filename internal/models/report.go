package models

import "time"

// Ryff dimension keys as stored in reports and used over the API.
const (
	DimAutonomy             = "autonomy"
	DimEnvironmentalMastery = "environmentalMastery"
	DimPersonalGrowth       = "personalGrowth"
	DimPositiveRelations    = "positiveRelations"
	DimPurposeInLife        = "purposeInLife"
	DimSelfAcceptance       = "selfAcceptance"
)

// RyffScores holds the six normalized wellbeing dimension scores (0-100).
type RyffScores struct {
	Autonomy             int `json:"autonomy"`
	EnvironmentalMastery int `json:"environmentalMastery"`
	PersonalGrowth       int `json:"personalGrowth"`
	PositiveRelations    int `json:"positiveRelations"`
	PurposeInLife        int `json:"purposeInLife"`
	SelfAcceptance       int `json:"selfAcceptance"`
}

// Map returns the scores keyed by dimension, in the same shape as the
// advices and feedbacks maps.
func (s RyffScores) Map() map[string]int {
	return map[string]int{
		DimAutonomy:             s.Autonomy,
		DimEnvironmentalMastery: s.EnvironmentalMastery,
		DimPersonalGrowth:       s.PersonalGrowth,
		DimPositiveRelations:    s.PositiveRelations,
		DimPurposeInLife:        s.PurposeInLife,
		DimSelfAcceptance:       s.SelfAcceptance,
	}
}

// Average returns the mean of the six dimension scores.
func (s RyffScores) Average() float64 {
	sum := s.Autonomy + s.EnvironmentalMastery + s.PersonalGrowth +
		s.PositiveRelations + s.PurposeInLife + s.SelfAcceptance
	return float64(sum) / 6
}

// WellbeingReport is one scored questionnaire submission. Scores and Date
// are fixed at creation; Advices and Feedbacks are filled in incrementally
// as the user reviews each dimension, and Summary is generated exactly once
// after every dimension has feedback.
type WellbeingReport struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Scores    RyffScores        `json:"scores"`
	Advices   map[string]string `json:"advices,omitempty"`
	Feedbacks map[string]string `json:"feedbacks,omitempty"`
	Summary   string            `json:"summary,omitempty"`
}

// FeedbackComplete reports whether every scored dimension has a non-empty
// feedback entry. Summary generation is gated on this.
func (r *WellbeingReport) FeedbackComplete() bool {
	for dim := range r.Scores.Map() {
		if r.Feedbacks[dim] == "" {
			return false
		}
	}
	return true
}
