package analytics

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTravelStatsZeroValueMatchesEmptyContract(t *testing.T) {
	// A user with no itineraries gets exactly this structure back.
	want := TravelStats{
		TotalTrips:              0,
		UniqueDestinationCount:  0,
		TotalDays:               0,
		AverageTripLength:       0,
		AverageTripCost:         0,
		MostVisitedCountryCount: 0,
		UpcomingTrips:           0,
	}
	if !reflect.DeepEqual(TravelStats{}, want) {
		t.Fatalf("zero TravelStats drifted from the empty-state contract: %+v", TravelStats{})
	}
}

func TestUniqueObjectIDsFlattensAndDeduplicates(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	lists := [][]primitive.ObjectID{
		{a, b},
		{b, c},
		{a},
	}
	got := uniqueObjectIDs(lists)
	if len(got) != 3 {
		t.Fatalf("expected 3 unique ids, got %d", len(got))
	}
	want := []primitive.ObjectID{a, b, c}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected first-seen order %v, got %v", want, got)
	}
}

func TestUniqueObjectIDsEmpty(t *testing.T) {
	if got := uniqueObjectIDs(nil); got != nil {
		t.Fatalf("expected nil for no lists, got %v", got)
	}
	if got := uniqueObjectIDs([][]primitive.ObjectID{{}, {}}); got != nil {
		t.Fatalf("expected nil for empty lists, got %v", got)
	}
}
