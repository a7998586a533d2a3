package analytics

import (
	"reflect"
	"strings"
	"testing"
)

func TestPopularityScoreEqualInputsEqualScores(t *testing.T) {
	a := popularityScore(4.2, 120, 85)
	b := popularityScore(4.2, 120, 85)
	if a != b {
		t.Fatalf("identical inputs produced different scores: %v vs %v", a, b)
	}
}

func TestPopularityScoreFormula(t *testing.T) {
	// 4.0*10 + 100*0.5 + trending bonus
	if got := popularityScore(4.0, 100, 80); got != 140 {
		t.Fatalf("expected 140, got %v", got)
	}
	if got := popularityScore(4.0, 100, 79); got != 90 {
		t.Fatalf("expected 90 below the trending threshold, got %v", got)
	}
	if got := popularityScore(0, 0, 0); got != 0 {
		t.Fatalf("expected 0 for an all-zero destination, got %v", got)
	}
}

func TestRecommendationScoreRanking(t *testing.T) {
	// Destination A: one category match, rating 3.0, created 40 days ago.
	scoreA := recommendationScore(1, 3.0, 40)
	if scoreA != 25 {
		t.Fatalf("expected destination A to score 25, got %v", scoreA)
	}

	// Destination B: no matches, rating 4.8, created 10 days ago.
	scoreB := recommendationScore(0, 4.8, 10)
	if scoreB != 44 {
		t.Fatalf("expected destination B to score 44, got %v", scoreB)
	}

	if scoreB <= scoreA {
		t.Fatalf("expected B (%v) to rank above A (%v)", scoreB, scoreA)
	}
}

func TestRecommendationScoreFreshnessBoundary(t *testing.T) {
	fresh := recommendationScore(0, 4.0, 29.9)
	stale := recommendationScore(0, 4.0, 30)
	if fresh-stale != 20 {
		t.Fatalf("expected a 20-point freshness bonus, got %v", fresh-stale)
	}
}

func TestRecommendationReasonPriority(t *testing.T) {
	reason := recommendationReason([]string{"beach", "food"}, 4.9)
	if !strings.Contains(reason, "beach, food") {
		t.Fatalf("expected preference match reason to win, got %q", reason)
	}

	reason = recommendationReason(nil, 4.5)
	if !strings.Contains(reason, "Highly rated") {
		t.Fatalf("expected high-rating reason at 4.5, got %q", reason)
	}

	reason = recommendationReason(nil, 4.4)
	if reason != "Popular with other travellers" {
		t.Fatalf("expected popularity fallback below 4.5, got %q", reason)
	}
}

func TestIntersectStrings(t *testing.T) {
	got := intersectStrings([]string{"beach", "food", "history"}, []string{"history", "beach"})
	want := []string{"beach", "history"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := intersectStrings([]string{"beach"}, nil); got != nil {
		t.Fatalf("expected nil for empty preference set, got %v", got)
	}
	if got := intersectStrings(nil, []string{"beach"}); got != nil {
		t.Fatalf("expected nil for empty category set, got %v", got)
	}
}
