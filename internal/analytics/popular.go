package analytics

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const defaultPopularLimit = 10

// PopularDestination is the projection returned by GetPopularDestinations.
type PopularDestination struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	DestinationID   string             `bson:"destinationId" json:"destinationId"`
	Name            string             `bson:"name" json:"name"`
	City            string             `bson:"city" json:"city"`
	Country         string             `bson:"country" json:"country"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	AvgRating       float64            `bson:"avgRating" json:"avgRating"`
	ReviewCount     int                `bson:"reviewCount" json:"reviewCount"`
	ImageURL        string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	PopularityScore float64            `bson:"popularityScore" json:"popularityScore"`
}

// GetPopularDestinations ranks active destinations with at least five reviews
// by popularity score and returns the top results. Ties order by _id so the
// ranking is deterministic.
func (e *Engine) GetPopularDestinations(ctx context.Context, limit int64) ([]PopularDestination, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"isActive":    true,
			"reviewCount": bson.M{"$gte": 5},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"popularityScore": popularityScoreExpr(),
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "popularityScore", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{
			"destinationId":   1,
			"name":            1,
			"city":            1,
			"country":         1,
			"description":     1,
			"avgRating":       1,
			"reviewCount":     1,
			"imageUrl":        1,
			"popularityScore": 1,
		}}},
	}

	cursor, err := e.destinations.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithError(err).Error("popular destinations aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []PopularDestination
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []PopularDestination{}
	}
	return results, nil
}

// popularityScoreExpr is the aggregation-expression form of popularityScore.
func popularityScoreExpr() bson.M {
	return bson.M{"$add": bson.A{
		bson.M{"$multiply": bson.A{"$avgRating", 10}},
		bson.M{"$multiply": bson.A{"$visitCount", 0.5}},
		bson.M{"$cond": bson.A{
			bson.M{"$gte": bson.A{"$trendingIndex", 80}},
			50,
			0,
		}},
	}}
}
