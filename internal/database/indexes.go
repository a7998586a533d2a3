package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const weatherTTLSeconds = 14 * 24 * 60 * 60

// IndexManager declares and creates the indexes each collection needs.
// Creation is idempotent: re-running it against a database that already has
// the indexes is a no-op on the server side.
type IndexManager struct {
	db  *mongo.Database
	log *logrus.Logger
}

func NewIndexManager(db *mongo.Database, log *logrus.Logger) *IndexManager {
	return &IndexManager{db: db, log: log}
}

// InitializeIndexes runs every per-collection routine concurrently and
// returns the first error. There is no rollback; a failed run can simply be
// retried.
func (m *IndexManager) InitializeIndexes(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return m.CreateUserIndexes(ctx) })
	g.Go(func() error { return m.CreateDestinationIndexes(ctx) })
	g.Go(func() error { return m.CreatePOIIndexes(ctx) })
	g.Go(func() error { return m.CreateItineraryIndexes(ctx) })
	g.Go(func() error { return m.CreateWeatherDataIndexes(ctx) })

	if err := g.Wait(); err != nil {
		return err
	}
	m.log.Info("all collection indexes in place")
	return nil
}

func (m *IndexManager) CreateUserIndexes(ctx context.Context) error {
	return m.createMany(ctx, UsersCollection, UserIndexModels())
}

func (m *IndexManager) CreateDestinationIndexes(ctx context.Context) error {
	return m.createMany(ctx, DestinationsCollection, DestinationIndexModels())
}

func (m *IndexManager) CreatePOIIndexes(ctx context.Context) error {
	return m.createMany(ctx, POIsCollection, POIIndexModels())
}

func (m *IndexManager) CreateItineraryIndexes(ctx context.Context) error {
	return m.createMany(ctx, ItinerariesCollection, ItineraryIndexModels())
}

func (m *IndexManager) CreateWeatherDataIndexes(ctx context.Context) error {
	return m.createMany(ctx, WeatherDataCollection, WeatherDataIndexModels())
}

// DropCollectionIndexes drops every index on the named collection except the
// built-in _id index. Meant for migrations and development resets.
func (m *IndexManager) DropCollectionIndexes(ctx context.Context, collection string) error {
	_, err := m.db.Collection(collection).Indexes().DropAll(ctx)
	if err != nil {
		m.log.WithField("collection", collection).WithError(err).Error("dropping indexes failed")
		return err
	}
	m.log.WithField("collection", collection).Info("dropped all indexes")
	return nil
}

// CreateCompoundIndex is an escape hatch for ad-hoc compound indexes outside
// the fixed per-collection lists.
func (m *IndexManager) CreateCompoundIndex(ctx context.Context, collection string, keys bson.D, opts *options.IndexOptions) error {
	return m.createMany(ctx, collection, []mongo.IndexModel{{Keys: keys, Options: opts}})
}

// CreateGeoIndex creates a 2dsphere index on the given field.
func (m *IndexManager) CreateGeoIndex(ctx context.Context, collection, field string) error {
	return m.createMany(ctx, collection, []mongo.IndexModel{{
		Keys: bson.D{{Key: field, Value: "2dsphere"}},
	}})
}

func (m *IndexManager) createMany(ctx context.Context, collection string, models []mongo.IndexModel) error {
	_, err := m.db.Collection(collection).Indexes().CreateMany(ctx, models)
	if err != nil {
		// Duplicate-key failures here mean a uniqueness constraint hit
		// pre-existing dirty data; the caller has to know about that.
		m.log.WithField("collection", collection).WithError(err).Error("index creation failed")
		return err
	}
	m.log.WithFields(logrus.Fields{
		"collection": collection,
		"count":      len(models),
	}).Info("indexes ensured")
	return nil
}

// UserIndexModels: unique email and username, preferences membership lookups,
// and a TTL index that only ever sees documents with a pending password reset.
func UserIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "preferences", Value: 1}},
			Options: options.Index().SetName("preferences_lookup"),
		},
		{
			Keys: bson.D{{Key: "resetPassword.expiresAt", Value: 1}},
			Options: options.Index().
				SetName("password_reset_ttl").
				SetExpireAfterSeconds(0).
				SetPartialFilterExpression(bson.M{
					"resetPassword.expiresAt": bson.M{"$exists": true},
				}),
		},
	}
}

// DestinationIndexModels: weighted text search, geospatial lookups, ranking
// and country/city filtering.
func DestinationIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().
				SetName("destination_text_search").
				SetWeights(bson.M{"name": 10, "description": 5}),
		},
		{
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("location_2dsphere"),
		},
		{
			Keys: bson.D{
				{Key: "visitCount", Value: -1},
				{Key: "avgRating", Value: -1},
			},
			Options: options.Index().SetName("ranking_visits_rating"),
		},
		{
			Keys: bson.D{
				{Key: "country", Value: 1},
				{Key: "city", Value: 1},
			},
			Options: options.Index().SetName("country_city"),
		},
	}
}

// POIIndexModels mirrors the destination conventions, plus per-destination
// category filtering.
func POIIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("location_2dsphere"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_lookup"),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "description", Value: "text"},
			},
			Options: options.Index().
				SetName("poi_text_search").
				SetWeights(bson.M{"name": 10, "description": 5}),
		},
		{
			Keys: bson.D{
				{Key: "destinationId", Value: 1},
				{Key: "category", Value: 1},
			},
			Options: options.Index().SetName("destination_category"),
		},
	}
}

// ItineraryIndexModels: owner lookups, per-user date-range queries and
// destination containment queries.
func ItineraryIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("user_lookup"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "dateRange.start", Value: 1},
				{Key: "dateRange.end", Value: 1},
			},
			Options: options.Index().SetName("user_date_range"),
		},
		{
			Keys:    bson.D{{Key: "destinations.destinationId", Value: 1}},
			Options: options.Index().SetName("destination_containment"),
		},
	}
}

// WeatherDataIndexModels enforces one record per (location, date) and purges
// records older than 14 days.
func WeatherDataIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "locationId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("location_date_unique").SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
			Options: options.Index().
				SetName("weather_ttl").
				SetExpireAfterSeconds(weatherTTLSeconds),
		},
	}
}
