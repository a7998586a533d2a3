package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func indexNames(t *testing.T, models []mongo.IndexModel) map[string]mongo.IndexModel {
	t.Helper()
	named := make(map[string]mongo.IndexModel, len(models))
	for _, m := range models {
		if m.Options == nil || m.Options.Name == nil {
			t.Fatalf("every declared index must carry an explicit name, got %+v", m)
		}
		if _, exists := named[*m.Options.Name]; exists {
			t.Fatalf("duplicate index name %q; re-running creation would not be idempotent", *m.Options.Name)
		}
		named[*m.Options.Name] = m
	}
	return named
}

func TestUserIndexModels(t *testing.T) {
	named := indexNames(t, UserIndexModels())
	if len(named) != 4 {
		t.Fatalf("expected 4 user indexes, got %d", len(named))
	}

	email, ok := named["email_unique"]
	if !ok || email.Options.Unique == nil || !*email.Options.Unique {
		t.Fatal("expected a unique email index")
	}
	username, ok := named["username_unique"]
	if !ok || username.Options.Unique == nil || !*username.Options.Unique {
		t.Fatal("expected a unique username index")
	}
	if _, ok := named["preferences_lookup"]; !ok {
		t.Fatal("expected a preferences index")
	}

	ttl, ok := named["password_reset_ttl"]
	if !ok {
		t.Fatal("expected the password reset TTL index")
	}
	if ttl.Options.ExpireAfterSeconds == nil || *ttl.Options.ExpireAfterSeconds != 0 {
		t.Fatal("password reset TTL must expire at the stored timestamp")
	}
	partial, ok := ttl.Options.PartialFilterExpression.(bson.M)
	if !ok {
		t.Fatalf("expected a partial filter on the TTL index, got %T", ttl.Options.PartialFilterExpression)
	}
	if _, ok := partial["resetPassword.expiresAt"]; !ok {
		t.Fatal("TTL partial filter must scope to documents with a pending reset")
	}
}

func TestDestinationIndexModels(t *testing.T) {
	named := indexNames(t, DestinationIndexModels())
	if len(named) != 4 {
		t.Fatalf("expected 4 destination indexes, got %d", len(named))
	}

	text, ok := named["destination_text_search"]
	if !ok {
		t.Fatal("expected the named text index")
	}
	weights, ok := text.Options.Weights.(bson.M)
	if !ok {
		t.Fatalf("expected text index weights, got %T", text.Options.Weights)
	}
	if weights["name"] != 10 || weights["description"] != 5 {
		t.Fatalf("expected name=10 description=5 weights, got %v", weights)
	}

	geo, ok := named["location_2dsphere"]
	if !ok {
		t.Fatal("expected a geospatial index")
	}
	keys := geo.Keys.(bson.D)
	if len(keys) != 1 || keys[0].Key != "location" || keys[0].Value != "2dsphere" {
		t.Fatalf("expected a 2dsphere index on location, got %v", keys)
	}

	ranking, ok := named["ranking_visits_rating"]
	if !ok {
		t.Fatal("expected the ranking compound index")
	}
	rankKeys := ranking.Keys.(bson.D)
	if len(rankKeys) != 2 || rankKeys[0].Key != "visitCount" || rankKeys[0].Value != -1 ||
		rankKeys[1].Key != "avgRating" || rankKeys[1].Value != -1 {
		t.Fatalf("expected (visitCount desc, avgRating desc), got %v", rankKeys)
	}

	if _, ok := named["country_city"]; !ok {
		t.Fatal("expected the (country, city) index")
	}
}

func TestPOIIndexModels(t *testing.T) {
	named := indexNames(t, POIIndexModels())
	if len(named) != 4 {
		t.Fatalf("expected 4 POI indexes, got %d", len(named))
	}
	if _, ok := named["poi_text_search"]; !ok {
		t.Fatal("expected the named POI text index")
	}
	if _, ok := named["location_2dsphere"]; !ok {
		t.Fatal("expected a geospatial index")
	}

	compound, ok := named["destination_category"]
	if !ok {
		t.Fatal("expected the (destinationId, category) index")
	}
	keys := compound.Keys.(bson.D)
	if len(keys) != 2 || keys[0].Key != "destinationId" || keys[1].Key != "category" {
		t.Fatalf("expected (destinationId, category), got %v", keys)
	}
}

func TestItineraryIndexModels(t *testing.T) {
	named := indexNames(t, ItineraryIndexModels())
	if len(named) != 3 {
		t.Fatalf("expected 3 itinerary indexes, got %d", len(named))
	}

	dateRange, ok := named["user_date_range"]
	if !ok {
		t.Fatal("expected the per-user date range index")
	}
	keys := dateRange.Keys.(bson.D)
	if len(keys) != 3 || keys[0].Key != "userId" || keys[1].Key != "dateRange.start" || keys[2].Key != "dateRange.end" {
		t.Fatalf("expected (userId, dateRange.start, dateRange.end), got %v", keys)
	}

	if _, ok := named["destination_containment"]; !ok {
		t.Fatal("expected the destinations array index")
	}
}

func TestWeatherDataIndexModels(t *testing.T) {
	named := indexNames(t, WeatherDataIndexModels())
	if len(named) != 2 {
		t.Fatalf("expected 2 weather indexes, got %d", len(named))
	}

	unique, ok := named["location_date_unique"]
	if !ok || unique.Options.Unique == nil || !*unique.Options.Unique {
		t.Fatal("expected the unique (locationId, date) index")
	}
	keys := unique.Keys.(bson.D)
	if len(keys) != 2 || keys[0].Key != "locationId" || keys[1].Key != "date" {
		t.Fatalf("expected (locationId, date), got %v", keys)
	}

	ttl, ok := named["weather_ttl"]
	if !ok {
		t.Fatal("expected the weather TTL index")
	}
	if ttl.Options.ExpireAfterSeconds == nil || *ttl.Options.ExpireAfterSeconds != 14*24*60*60 {
		t.Fatal("weather records must expire after 14 days")
	}
}
