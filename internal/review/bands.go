// Package review derives display classifications from match records. All
// functions here are pure; ordering and filtering of matches stay with the
// backend response.
package review

import "strings"

// ScoreBand is the display emphasis for a match score.
type ScoreBand string

const (
	ScoreStrong ScoreBand = "strong"
	ScoreGood   ScoreBand = "good"
	ScoreFair   ScoreBand = "fair"
	ScoreWeak   ScoreBand = "weak"
)

// RecommendationBand is the display category for a free-text recommendation.
type RecommendationBand string

const (
	RecommendationHighly  RecommendationBand = "highly-recommended"
	RecommendationPlain   RecommendationBand = "recommended"
	RecommendationMaybe   RecommendationBand = "maybe"
	RecommendationNeutral RecommendationBand = "neutral"
)

// BandForScore maps a score onto a band with boundaries at 80, 60 and 40.
// Scores outside 0-100 still land in a band.
func BandForScore(score int) ScoreBand {
	switch {
	case score >= 80:
		return ScoreStrong
	case score >= 60:
		return ScoreGood
	case score >= 40:
		return ScoreFair
	default:
		return ScoreWeak
	}
}

// BandForRecommendation matches the known recommendation strings
// case-insensitively. Unknown or empty values degrade to the neutral band.
func BandForRecommendation(text string) RecommendationBand {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "highly recommended":
		return RecommendationHighly
	case "recommended":
		return RecommendationPlain
	case "maybe":
		return RecommendationMaybe
	default:
		return RecommendationNeutral
	}
}

// Preview returns at most n leading items without touching the source slice.
func Preview(items []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}

	preview := make([]string, n)
	copy(preview, items[:n])

	return preview
}
