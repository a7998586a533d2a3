package analytics

import (
	"testing"
	"time"
)

func TestSummarizeCostsTwoTrips(t *testing.T) {
	summary := summarizeCosts([]float64{100, 300})

	if summary.AverageCost != 200 {
		t.Fatalf("expected averageCost 200, got %v", summary.AverageCost)
	}
	if summary.MinCost != 100 {
		t.Fatalf("expected minCost 100, got %v", summary.MinCost)
	}
	if summary.MaxCost != 300 {
		t.Fatalf("expected maxCost 300, got %v", summary.MaxCost)
	}
	if summary.MedianCost != 200 {
		t.Fatalf("expected medianCost 200, got %v", summary.MedianCost)
	}
	if summary.TripCount != 2 {
		t.Fatalf("expected tripCount 2, got %d", summary.TripCount)
	}
}

func TestSummarizeCostsSingleTrip(t *testing.T) {
	summary := summarizeCosts([]float64{450})
	if summary.AverageCost != 450 || summary.MinCost != 450 || summary.MaxCost != 450 || summary.MedianCost != 450 {
		t.Fatalf("expected all statistics to equal the single cost, got %+v", summary)
	}
}

func TestSummarizeCostsEmpty(t *testing.T) {
	summary := summarizeCosts(nil)
	if summary != (CostSummary{}) {
		t.Fatalf("expected the zero summary for no costs, got %+v", summary)
	}
}

func TestSummarizeCostsMedianOddCount(t *testing.T) {
	summary := summarizeCosts([]float64{300, 100, 500})
	if summary.MedianCost != 300 {
		t.Fatalf("expected medianCost 300 for odd count, got %v", summary.MedianCost)
	}
}

func TestStartDateFilter(t *testing.T) {
	if got := startDateFilter(nil, nil); got != nil {
		t.Fatalf("expected nil filter when no bounds set, got %v", got)
	}

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	filter := startDateFilter(&from, &to)
	if filter["$gte"] != from || filter["$lte"] != to {
		t.Fatalf("expected both bounds in filter, got %v", filter)
	}

	filter = startDateFilter(&from, nil)
	if filter["$gte"] != from {
		t.Fatalf("expected lower bound, got %v", filter)
	}
	if _, ok := filter["$lte"]; ok {
		t.Fatalf("did not expect upper bound, got %v", filter)
	}
}
