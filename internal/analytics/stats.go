package analytics

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TravelStats summarizes a user's itinerary history.
type TravelStats struct {
	TotalTrips              int     `json:"totalTrips"`
	UniqueDestinationCount  int     `json:"uniqueDestinationCount"`
	TotalDays               float64 `json:"totalDays"`
	AverageTripLength       float64 `json:"averageTripLength"`
	AverageTripCost         float64 `json:"averageTripCost"`
	MostVisitedCountryCount int     `json:"mostVisitedCountryCount"`
	UpcomingTrips           int     `json:"upcomingTrips"`
}

// GetUserTravelStats aggregates a user's itineraries. A user with no
// itineraries gets the zeroed struct back, not an error: missing data is a
// valid empty state here, unlike a missing user in recommendations.
func (e *Engine) GetUserTravelStats(ctx context.Context, userID primitive.ObjectID) (TravelStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"tripDays": bson.M{"$divide": bson.A{
				bson.M{"$subtract": bson.A{"$dateRange.end", "$dateRange.start"}},
				millisPerDay,
			}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":              nil,
			"totalTrips":       bson.M{"$sum": 1},
			"totalDays":        bson.M{"$sum": "$tripDays"},
			"averageTripCost":  bson.M{"$avg": "$estimatedCost"},
			"destinationLists": bson.M{"$push": "$destinations.destinationId"},
			"upcomingTrips": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$dateRange.start", "$$NOW"}},
				1,
				0,
			}}},
		}}},
	}

	cursor, err := e.itineraries.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithField("userId", userID.Hex()).WithError(err).Error("travel stats aggregation failed")
		return TravelStats{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		TotalTrips       int                    `bson:"totalTrips"`
		TotalDays        float64                `bson:"totalDays"`
		AverageTripCost  float64                `bson:"averageTripCost"`
		DestinationLists [][]primitive.ObjectID `bson:"destinationLists"`
		UpcomingTrips    int                    `bson:"upcomingTrips"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return TravelStats{}, err
	}
	if len(rows) == 0 {
		return TravelStats{}, nil
	}
	row := rows[0]

	unique := uniqueObjectIDs(row.DestinationLists)
	stats := TravelStats{
		TotalTrips:             row.TotalTrips,
		UniqueDestinationCount: len(unique),
		TotalDays:              row.TotalDays,
		AverageTripCost:        row.AverageTripCost,
		UpcomingTrips:          row.UpcomingTrips,
	}
	if row.TotalTrips > 0 {
		stats.AverageTripLength = row.TotalDays / float64(row.TotalTrips)
	}

	if len(unique) > 0 {
		countries, err := e.destinations.Distinct(ctx, "country", bson.M{"_id": bson.M{"$in": unique}})
		if err != nil {
			e.log.WithField("userId", userID.Hex()).WithError(err).Error("country lookup failed")
			return TravelStats{}, err
		}
		stats.MostVisitedCountryCount = len(countries)
	}

	return stats, nil
}

// uniqueObjectIDs flattens per-itinerary destination id lists into the
// distinct set of visited destinations.
func uniqueObjectIDs(lists [][]primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]bool)
	var out []primitive.ObjectID
	for _, list := range lists {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}
