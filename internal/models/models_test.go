package models

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validDestination() Destination {
	now := time.Now()
	return Destination{
		DestinationID: "dest-lisbon",
		Name:          "Lisbon",
		City:          "Lisbon",
		Country:       "Portugal",
		Location:      NewGeoPoint(-9.1393, 38.7223),
		Categories:    []string{"beach", "history"},
		AvgRating:     4.6,
		ReviewCount:   12,
		VisitCount:    100,
		TrendingIndex: 80,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestValidateAcceptsWellFormedDestination(t *testing.T) {
	d := validDestination()
	if err := Validate(&d); err != nil {
		t.Fatalf("expected a valid destination, got %v", err)
	}
}

func TestValidateRejectsRatingAboveFive(t *testing.T) {
	d := validDestination()
	d.AvgRating = 6
	if err := Validate(&d); err == nil {
		t.Fatal("expected validation error for rating above 5")
	}
}

func TestValidateRejectsBadCoordinates(t *testing.T) {
	d := validDestination()
	d.Location.Coordinates = []float64{-9.1393}
	if err := Validate(&d); err == nil {
		t.Fatal("expected validation error for a 1-element coordinate array")
	}

	d = validDestination()
	d.Location.Type = "Polygon"
	if err := Validate(&d); err == nil {
		t.Fatal("expected validation error for a non-Point geometry")
	}
}

func TestValidateRejectsTrendingIndexOutOfRange(t *testing.T) {
	d := validDestination()
	d.TrendingIndex = 101
	if err := Validate(&d); err == nil {
		t.Fatal("expected validation error for trending index above 100")
	}
}

func TestGeoPointAccessors(t *testing.T) {
	p := NewGeoPoint(73.0479, 33.6844)
	if p.Type != "Point" {
		t.Fatalf("expected GeoJSON Point, got %q", p.Type)
	}
	if p.Longitude() != 73.0479 || p.Latitude() != 33.6844 {
		t.Fatalf("expected [lng lat] order preserved, got lng=%v lat=%v", p.Longitude(), p.Latitude())
	}

	var empty GeoPoint
	if empty.Longitude() != 0 || empty.Latitude() != 0 {
		t.Fatal("expected zero coordinates for an empty point")
	}
}

func validUser() User {
	now := time.Now()
	return User{
		Email:    "demo@example.com",
		Username: "demo_traveller",
		Profile: UserProfile{
			Name: "Demo",
			Age:  29,
		},
		Preferences: []string{"history"},
		Role:        RoleUser,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestValidateUserBoundaries(t *testing.T) {
	u := validUser()
	if err := Validate(&u); err != nil {
		t.Fatalf("expected a valid user, got %v", err)
	}

	u = validUser()
	u.Profile.Age = 12
	if err := Validate(&u); err == nil {
		t.Fatal("expected validation error for age below 13")
	}

	u = validUser()
	u.Profile.Bio = strings.Repeat("x", 501)
	if err := Validate(&u); err == nil {
		t.Fatal("expected validation error for bio above 500 chars")
	}

	u = validUser()
	u.Username = "ab"
	if err := Validate(&u); err == nil {
		t.Fatal("expected validation error for a 2-char username")
	}

	u = validUser()
	u.Email = "not-an-email"
	if err := Validate(&u); err == nil {
		t.Fatal("expected validation error for malformed email")
	}
}

func validItinerary() Itinerary {
	now := time.Now()
	return Itinerary{
		UserID: primitive.NewObjectID(),
		Title:  "Spring week in Kyoto",
		DateRange: DateRange{
			Start: now,
			End:   now.AddDate(0, 0, 7),
		},
		Destinations: []ItineraryDestination{
			{DestinationID: primitive.NewObjectID(), Order: 0},
		},
		Transportation: "flight",
		EstimatedCost:  2100,
		Status:         ItineraryStatusPlanning,
		Visibility:     VisibilityPrivate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestValidateItineraryDateOrder(t *testing.T) {
	it := validItinerary()
	if err := Validate(&it); err != nil {
		t.Fatalf("expected a valid itinerary, got %v", err)
	}

	it.DateRange.End = it.DateRange.Start.AddDate(0, 0, -1)
	if err := Validate(&it); err == nil {
		t.Fatal("expected validation error when end precedes start")
	}
}

func TestValidateItineraryEnums(t *testing.T) {
	it := validItinerary()
	it.Status = "archived"
	if err := Validate(&it); err == nil {
		t.Fatal("expected validation error for unknown status")
	}

	it = validItinerary()
	it.Visibility = "friends"
	if err := Validate(&it); err == nil {
		t.Fatal("expected validation error for unknown visibility")
	}

	it = validItinerary()
	it.CostBreakdown.Food = -1
	if err := Validate(&it); err == nil {
		t.Fatal("expected validation error for negative cost category")
	}
}

func TestValidatePOICategory(t *testing.T) {
	now := time.Now()
	poi := PointOfInterest{
		Name:          "Faisal Mosque",
		Category:      POICategoryAttraction,
		Location:      NewGeoPoint(73.0372, 33.7295),
		Rating:        4.9,
		PriceLevel:    1,
		DestinationID: primitive.NewObjectID(),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := Validate(&poi); err != nil {
		t.Fatalf("expected a valid POI, got %v", err)
	}

	poi.Category = "arcade"
	if err := Validate(&poi); err == nil {
		t.Fatal("expected validation error for a category outside the enum")
	}

	poi.Category = POICategoryOther
	poi.PriceLevel = 6
	if err := Validate(&poi); err == nil {
		t.Fatal("expected validation error for price level above 5")
	}
}
