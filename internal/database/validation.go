package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SchemaValidator applies $jsonSchema validators at the collection level so
// malformed documents are rejected by the storage layer itself, independent
// of the in-process checks in internal/models.
type SchemaValidator struct {
	db  *mongo.Database
	log *logrus.Logger
}

func NewSchemaValidator(db *mongo.Database, log *logrus.Logger) *SchemaValidator {
	return &SchemaValidator{db: db, log: log}
}

// ApplyAllValidations applies each collection's schema with level "moderate"
// (only new and modified documents are checked) and action "error". Missing
// collections are skipped so the call is safe before first writes. Failures
// on one collection do not stop the others; every failure is reported in the
// joined error.
func (v *SchemaValidator) ApplyAllValidations(ctx context.Context) error {
	names, err := v.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}

	var errs []error
	for _, entry := range collectionSchemas() {
		if !existing[entry.collection] {
			v.log.WithField("collection", entry.collection).Debug("collection absent, skipping validation")
			continue
		}
		if err := v.applyValidation(ctx, entry.collection, entry.schema); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type schemaEntry struct {
	collection string
	schema     bson.M
}

func collectionSchemas() []schemaEntry {
	return []schemaEntry{
		{UsersCollection, GetUserValidationSchema()},
		{DestinationsCollection, GetDestinationValidationSchema()},
		{POIsCollection, GetPointOfInterestValidationSchema()},
		{ItinerariesCollection, GetItineraryValidationSchema()},
		{WeatherDataCollection, GetWeatherDataValidationSchema()},
	}
}

func (v *SchemaValidator) applyValidation(ctx context.Context, collection string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: collection},
		{Key: "validator", Value: bson.M{"$jsonSchema": schema}},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	if err := v.db.RunCommand(ctx, cmd).Err(); err != nil {
		v.log.WithField("collection", collection).WithError(err).Error("applying validation failed")
		return fmt.Errorf("apply validation to %s: %w", collection, err)
	}
	v.log.WithField("collection", collection).Info("validation schema applied")
	return nil
}

// geoPointSchema constrains a field to a GeoJSON Point with [lng, lat]
// coordinates.
func geoPointSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"type", "coordinates"},
		"properties": bson.M{
			"type": bson.M{"enum": []string{"Point"}},
			"coordinates": bson.M{
				"bsonType": "array",
				"minItems": 2,
				"maxItems": 2,
				"items":    bson.M{"bsonType": "double"},
			},
		},
	}
}

func GetUserValidationSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"email", "username", "role", "isActive"},
		"properties": bson.M{
			"email": bson.M{
				"bsonType": "string",
				"pattern":  `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
			},
			"username": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 30,
			},
			"role": bson.M{"enum": []string{"user", "admin"}},
			"profile": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"age": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  13,
						"maximum":  120,
					},
					"gender": bson.M{"enum": []string{"male", "female", "other", "prefer_not_to_say"}},
					"bio": bson.M{
						"bsonType":  "string",
						"maxLength": 500,
					},
				},
			},
			"preferences": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
			"isActive": bson.M{"bsonType": "bool"},
			"resetPassword": bson.M{
				"bsonType": "object",
				"required": []string{"token", "expiresAt"},
				"properties": bson.M{
					"token":     bson.M{"bsonType": "string"},
					"expiresAt": bson.M{"bsonType": "date"},
				},
			},
		},
	}
}

func GetDestinationValidationSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"destinationId", "name", "city", "country", "location", "isActive"},
		"properties": bson.M{
			"destinationId": bson.M{"bsonType": "string"},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"city":     bson.M{"bsonType": "string"},
			"country":  bson.M{"bsonType": "string"},
			"location": geoPointSchema(),
			"categories": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "string"},
			},
			"avgRating": bson.M{
				"bsonType": []string{"int", "long", "double"},
				"minimum":  0,
				"maximum":  5,
			},
			"reviewCount": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
			"visitCount": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
			},
			"trendingIndex": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  0,
				"maximum":  100,
			},
			"isActive": bson.M{"bsonType": "bool"},
		},
	}
}

func GetPointOfInterestValidationSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"name", "category", "location", "destinationId", "isActive"},
		"properties": bson.M{
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"category": bson.M{"enum": []string{
				"restaurant", "cafe", "attraction", "museum", "park",
				"shopping", "nightlife", "transport", "accommodation", "other",
			}},
			"location": geoPointSchema(),
			"rating": bson.M{
				"bsonType": []string{"int", "long", "double"},
				"minimum":  0,
				"maximum":  5,
			},
			"priceLevel": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1,
				"maximum":  5,
			},
			"destinationId": bson.M{"bsonType": "objectId"},
			"isActive":      bson.M{"bsonType": "bool"},
		},
	}
}

func GetItineraryValidationSchema() bson.M {
	nonNegativeNumber := bson.M{
		"bsonType": []string{"int", "long", "double"},
		"minimum":  0,
	}
	return bson.M{
		"bsonType": "object",
		"required": []string{"userId", "title", "dateRange", "status", "visibility"},
		"properties": bson.M{
			"userId": bson.M{"bsonType": "objectId"},
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 150,
			},
			"dateRange": bson.M{
				"bsonType": "object",
				"required": []string{"start", "end"},
				"properties": bson.M{
					"start": bson.M{"bsonType": "date"},
					"end":   bson.M{"bsonType": "date"},
				},
			},
			"destinations": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"destinationId", "order"},
					"properties": bson.M{
						"destinationId": bson.M{"bsonType": "objectId"},
						"order": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  0,
						},
					},
				},
			},
			"transportation": bson.M{"enum": []string{"flight", "train", "bus", "car", "ferry", "mixed"}},
			"estimatedCost":  nonNegativeNumber,
			"costBreakdown": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"accommodation": nonNegativeNumber,
					"transport":     nonNegativeNumber,
					"food":          nonNegativeNumber,
					"activities":    nonNegativeNumber,
					"misc":          nonNegativeNumber,
				},
			},
			"status":     bson.M{"enum": []string{"planning", "confirmed", "in-progress", "completed", "cancelled"}},
			"visibility": bson.M{"enum": []string{"private", "shared", "public"}},
			"sharedWith": bson.M{
				"bsonType": "array",
				"items":    bson.M{"bsonType": "objectId"},
			},
		},
	}
}

func GetWeatherDataValidationSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"locationId", "city", "country", "date", "forecast"},
		"properties": bson.M{
			"locationId": bson.M{"bsonType": "objectId"},
			"city":       bson.M{"bsonType": "string"},
			"country":    bson.M{"bsonType": "string"},
			"date":       bson.M{"bsonType": "date"},
			"forecast": bson.M{
				"bsonType": "object",
				"required": []string{"tempMin", "tempMax", "condition"},
				"properties": bson.M{
					"humidity": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  0,
						"maximum":  100,
					},
					"windSpeed": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  0,
					},
					"precipProbability": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  0,
						"maximum":  100,
					},
					"precipAmount": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  0,
					},
					"uvIndex": bson.M{
						"bsonType": []string{"int", "long", "double"},
						"minimum":  0,
						"maximum":  11,
					},
					"condition": bson.M{"enum": []string{
						"clear", "sunny", "cloudy", "rain", "snow", "storm", "fog", "windy",
					}},
				},
			},
			"historicalAverages": bson.M{
				"bsonType": "array",
				"maxItems": 12,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"month"},
					"properties": bson.M{
						"month": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  1,
							"maximum":  12,
						},
					},
				},
			},
		},
	}
}
