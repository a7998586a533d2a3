package analytics

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

const defaultRecommendationLimit = 10

// RecommendedDestination is one personalized recommendation with its score
// and a human-readable reason.
type RecommendedDestination struct {
	ID                  primitive.ObjectID `bson:"_id" json:"id"`
	DestinationID       string             `bson:"destinationId" json:"destinationId"`
	Name                string             `bson:"name" json:"name"`
	City                string             `bson:"city" json:"city"`
	Country             string             `bson:"country" json:"country"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Categories          []string           `bson:"categories" json:"categories"`
	AvgRating           float64            `bson:"avgRating" json:"avgRating"`
	ImageURL            string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	PreferenceMatches   int                `bson:"preferenceMatches" json:"preferenceMatches"`
	RecommendationScore float64            `bson:"recommendationScore" json:"recommendationScore"`
	Reason              string             `bson:"-" json:"reason"`
}

// GetPersonalizedRecommendations scores active destinations against the
// user's preference tags. Destinations qualify by sharing a category with the
// preferences or by an average rating of 4.5+; recent additions get a
// freshness bonus. Returns ErrUserNotFound when the user id does not resolve.
func (e *Engine) GetPersonalizedRecommendations(ctx context.Context, userID primitive.ObjectID, limit int64) ([]RecommendedDestination, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	var user models.User
	err := e.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	preferences := user.Preferences
	if preferences == nil {
		preferences = []string{}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"isActive": true,
			"$or": bson.A{
				bson.M{"categories": bson.M{"$in": preferences}},
				bson.M{"avgRating": bson.M{"$gte": 4.5}},
			},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"preferenceMatches": bson.M{"$size": bson.M{"$setIntersection": bson.A{
				bson.M{"$ifNull": bson.A{"$categories", bson.A{}}},
				preferences,
			}}},
			"daysSinceCreation": bson.M{"$divide": bson.A{
				bson.M{"$subtract": bson.A{"$$NOW", "$createdAt"}},
				millisPerDay,
			}},
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"recommendationScore": bson.M{"$add": bson.A{
				bson.M{"$multiply": bson.A{"$preferenceMatches", 10}},
				bson.M{"$multiply": bson.A{"$avgRating", 5}},
				bson.M{"$cond": bson.A{
					bson.M{"$lt": bson.A{"$daysSinceCreation", 30}},
					20,
					0,
				}},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "recommendationScore", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$project", Value: bson.M{
			"destinationId":       1,
			"name":                1,
			"city":                1,
			"country":             1,
			"description":         1,
			"categories":          1,
			"avgRating":           1,
			"imageUrl":            1,
			"preferenceMatches":   1,
			"recommendationScore": 1,
		}}},
	}

	cursor, err := e.destinations.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithField("userId", userID.Hex()).WithError(err).Error("recommendation aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []RecommendedDestination
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	for i := range results {
		matched := intersectStrings(results[i].Categories, preferences)
		results[i].Reason = recommendationReason(matched, results[i].AvgRating)
	}
	if results == nil {
		results = []RecommendedDestination{}
	}
	return results, nil
}
