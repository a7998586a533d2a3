package analytics

import (
	"fmt"
	"strings"
)

// popularityScore mirrors the server-side expression in
// GetPopularDestinations: rating dominates, visits add half a point each,
// and destinations trending at 80+ get a flat bonus.
func popularityScore(avgRating float64, visitCount, trendingIndex int) float64 {
	score := avgRating*10 + float64(visitCount)*0.5
	if trendingIndex >= 80 {
		score += 50
	}
	return score
}

// recommendationScore mirrors the server-side expression in
// GetPersonalizedRecommendations. daysSinceCreation below 30 earns a
// freshness bonus.
func recommendationScore(preferenceMatches int, avgRating, daysSinceCreation float64) float64 {
	score := float64(preferenceMatches)*10 + avgRating*5
	if daysSinceCreation < 30 {
		score += 20
	}
	return score
}

// recommendationReason picks the human-readable explanation for a
// recommendation. Priority: preference match, then high rating, then the
// generic popularity fallback.
func recommendationReason(matchedCategories []string, avgRating float64) string {
	switch {
	case len(matchedCategories) > 0:
		return "Matches your interests: " + strings.Join(matchedCategories, ", ")
	case avgRating >= 4.5:
		return fmt.Sprintf("Highly rated by travellers (%.1f/5)", avgRating)
	default:
		return "Popular with other travellers"
	}
}

// intersectStrings returns the elements of a that also appear in b,
// preserving a's order.
func intersectStrings(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	var out []string
	for _, s := range a {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}
