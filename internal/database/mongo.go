package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the index manager, schema validator and the
// analytics engine.
const (
	UsersCollection        = "users"
	DestinationsCollection = "destinations"
	POIsCollection         = "pois"
	ItinerariesCollection  = "itineraries"
	WeatherDataCollection  = "weatherdata"
)

// Connect opens a client and verifies the server is reachable before
// returning it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
