package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func requiredFields(t *testing.T, schema bson.M) map[string]bool {
	t.Helper()
	raw, ok := schema["required"].([]string)
	if !ok {
		t.Fatalf("schema has no required list: %v", schema)
	}
	set := make(map[string]bool, len(raw))
	for _, field := range raw {
		set[field] = true
	}
	return set
}

func properties(t *testing.T, schema bson.M) bson.M {
	t.Helper()
	props, ok := schema["properties"].(bson.M)
	if !ok {
		t.Fatalf("schema has no properties: %v", schema)
	}
	return props
}

func TestCollectionSchemasCoverAllCollections(t *testing.T) {
	entries := collectionSchemas()
	if len(entries) != 5 {
		t.Fatalf("expected 5 collection schemas, got %d", len(entries))
	}
	want := []string{
		UsersCollection, DestinationsCollection, POIsCollection,
		ItinerariesCollection, WeatherDataCollection,
	}
	for i, name := range want {
		if entries[i].collection != name {
			t.Fatalf("expected schema %d to target %s, got %s", i, name, entries[i].collection)
		}
		if entries[i].schema == nil {
			t.Fatalf("schema for %s is nil", name)
		}
	}
}

func TestUserValidationSchema(t *testing.T) {
	schema := GetUserValidationSchema()
	required := requiredFields(t, schema)
	for _, field := range []string{"email", "username", "role", "isActive"} {
		if !required[field] {
			t.Fatalf("expected %s to be required", field)
		}
	}

	props := properties(t, schema)
	username := props["username"].(bson.M)
	if username["minLength"] != 3 || username["maxLength"] != 30 {
		t.Fatalf("expected username length 3-30, got %v", username)
	}

	age := properties(t, props["profile"].(bson.M))["age"].(bson.M)
	if age["minimum"] != 13 || age["maximum"] != 120 {
		t.Fatalf("expected age 13-120, got %v", age)
	}

	role := props["role"].(bson.M)["enum"].([]string)
	if len(role) != 2 || role[0] != "user" || role[1] != "admin" {
		t.Fatalf("expected role enum [user admin], got %v", role)
	}
}

func TestDestinationValidationSchema(t *testing.T) {
	schema := GetDestinationValidationSchema()
	required := requiredFields(t, schema)
	for _, field := range []string{"destinationId", "name", "city", "country", "location", "isActive"} {
		if !required[field] {
			t.Fatalf("expected %s to be required", field)
		}
	}

	props := properties(t, schema)
	rating := props["avgRating"].(bson.M)
	if rating["minimum"] != 0 || rating["maximum"] != 5 {
		t.Fatalf("expected rating 0-5, got %v", rating)
	}
	trending := props["trendingIndex"].(bson.M)
	if trending["minimum"] != 0 || trending["maximum"] != 100 {
		t.Fatalf("expected trending index 0-100, got %v", trending)
	}
}

func TestGeoPointSchemaShape(t *testing.T) {
	schema := geoPointSchema()
	required := requiredFields(t, schema)
	if !required["type"] || !required["coordinates"] {
		t.Fatal("geo points must require type and coordinates")
	}

	props := properties(t, schema)
	pointType := props["type"].(bson.M)["enum"].([]string)
	if len(pointType) != 1 || pointType[0] != "Point" {
		t.Fatalf("expected only Point geometries, got %v", pointType)
	}

	coords := props["coordinates"].(bson.M)
	if coords["minItems"] != 2 || coords["maxItems"] != 2 {
		t.Fatalf("expected exactly 2 coordinates, got %v", coords)
	}
}

func TestPointOfInterestValidationSchema(t *testing.T) {
	schema := GetPointOfInterestValidationSchema()
	props := properties(t, schema)

	categories := props["category"].(bson.M)["enum"].([]string)
	if len(categories) != 10 {
		t.Fatalf("expected the 10 fixed POI categories, got %d", len(categories))
	}
	if categories[len(categories)-1] != "other" {
		t.Fatalf("expected the catch-all category last, got %v", categories)
	}

	price := props["priceLevel"].(bson.M)
	if price["minimum"] != 1 || price["maximum"] != 5 {
		t.Fatalf("expected price level 1-5, got %v", price)
	}
}

func TestItineraryValidationSchema(t *testing.T) {
	schema := GetItineraryValidationSchema()
	required := requiredFields(t, schema)
	for _, field := range []string{"userId", "title", "dateRange", "status", "visibility"} {
		if !required[field] {
			t.Fatalf("expected %s to be required", field)
		}
	}

	props := properties(t, schema)
	status := props["status"].(bson.M)["enum"].([]string)
	if len(status) != 5 {
		t.Fatalf("expected 5 itinerary statuses, got %v", status)
	}
	visibility := props["visibility"].(bson.M)["enum"].([]string)
	if len(visibility) != 3 {
		t.Fatalf("expected 3 visibility levels, got %v", visibility)
	}

	breakdown := properties(t, props["costBreakdown"].(bson.M))
	for _, category := range []string{"accommodation", "transport", "food", "activities", "misc"} {
		entry, ok := breakdown[category].(bson.M)
		if !ok {
			t.Fatalf("expected a %s breakdown rule", category)
		}
		if entry["minimum"] != 0 {
			t.Fatalf("expected %s to be non-negative, got %v", category, entry)
		}
	}
}

func TestWeatherDataValidationSchema(t *testing.T) {
	schema := GetWeatherDataValidationSchema()
	required := requiredFields(t, schema)
	for _, field := range []string{"locationId", "city", "country", "date", "forecast"} {
		if !required[field] {
			t.Fatalf("expected %s to be required", field)
		}
	}

	forecast := properties(t, properties(t, schema)["forecast"].(bson.M))
	uv := forecast["uvIndex"].(bson.M)
	if uv["minimum"] != 0 || uv["maximum"] != 11 {
		t.Fatalf("expected UV index 0-11, got %v", uv)
	}
	humidity := forecast["humidity"].(bson.M)
	if humidity["minimum"] != 0 || humidity["maximum"] != 100 {
		t.Fatalf("expected humidity 0-100, got %v", humidity)
	}
}
