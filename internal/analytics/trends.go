package analytics

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const (
	trendingIndexFloor   = 70
	trendingResultLimit  = 10
	monthlyTopDestLimit  = 5
	trendingWindowMonths = 3
)

// DestinationTripCount is one destination's itinerary count within a month.
type DestinationTripCount struct {
	DestinationID primitive.ObjectID `bson:"destinationId" json:"destinationId"`
	TripCount     int                `bson:"tripCount" json:"tripCount"`
}

// MonthlyTopDestinations ranks the most planned destinations of one month.
type MonthlyTopDestinations struct {
	Year         int                    `bson:"year" json:"year"`
	Month        int                    `bson:"month" json:"month"`
	Destinations []DestinationTripCount `bson:"destinations" json:"destinations"`
}

// PlatformStats are the platform-wide itinerary aggregates.
type PlatformStats struct {
	TotalItineraries int     `bson:"totalItineraries" json:"totalItineraries"`
	AverageTripDays  float64 `bson:"averageTripDays" json:"averageTripDays"`
	AverageCost      float64 `bson:"averageCost" json:"averageCost"`
}

// TrendingDestination is a destination currently flagged as trending.
type TrendingDestination struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	DestinationID string             `bson:"destinationId" json:"destinationId"`
	Name          string             `bson:"name" json:"name"`
	City          string             `bson:"city" json:"city"`
	Country       string             `bson:"country" json:"country"`
	AvgRating     float64            `bson:"avgRating" json:"avgRating"`
	TrendingIndex int                `bson:"trendingIndex" json:"trendingIndex"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// TravelTrends is the three-part trend report.
type TravelTrends struct {
	MonthlyTopDestinations []MonthlyTopDestinations `json:"monthlyTopDestinations"`
	Platform               PlatformStats            `json:"platform"`
	TrendingDestinations   []TrendingDestination    `json:"trendingDestinations"`
}

// GetTravelTrends assembles the monthly top-5 ranking over the trailing year,
// platform-wide aggregates, and the current trending destinations. The three
// parts are independent reads and run concurrently.
func (e *Engine) GetTravelTrends(ctx context.Context) (TravelTrends, error) {
	var trends TravelTrends

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		monthly, err := e.monthlyTopDestinations(ctx)
		trends.MonthlyTopDestinations = monthly
		return err
	})
	g.Go(func() error {
		platform, err := e.platformStats(ctx)
		trends.Platform = platform
		return err
	})
	g.Go(func() error {
		trending, err := e.trendingDestinations(ctx)
		trends.TrendingDestinations = trending
		return err
	})
	if err := g.Wait(); err != nil {
		e.log.WithError(err).Error("travel trends report failed")
		return TravelTrends{}, err
	}
	return trends, nil
}

// monthlyTopDestinations groups itineraries of the trailing year by
// (year, month, destination), then regroups per month keeping the five most
// planned destinations.
func (e *Engine) monthlyTopDestinations(ctx context.Context) ([]MonthlyTopDestinations, error) {
	yearAgo := time.Now().AddDate(-1, 0, 0)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": yearAgo},
		}}},
		bson.D{{Key: "$unwind", Value: "$destinations"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":          bson.M{"$year": "$dateRange.start"},
				"month":         bson.M{"$month": "$dateRange.start"},
				"destinationId": "$destinations.destinationId",
			},
			"tripCount": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
			{Key: "tripCount", Value: -1},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  "$_id.year",
				"month": "$_id.month",
			},
			"destinations": bson.M{"$push": bson.M{
				"destinationId": "$_id.destinationId",
				"tripCount":     "$tripCount",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"year":         "$_id.year",
			"month":        "$_id.month",
			"destinations": bson.M{"$slice": bson.A{"$destinations", monthlyTopDestLimit}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "year", Value: 1},
			{Key: "month", Value: 1},
		}}},
	}

	cursor, err := e.itineraries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var monthly []MonthlyTopDestinations
	if err := cursor.All(ctx, &monthly); err != nil {
		return nil, err
	}
	if monthly == nil {
		monthly = []MonthlyTopDestinations{}
	}
	return monthly, nil
}

func (e *Engine) platformStats(ctx context.Context) (PlatformStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{
			"tripDays": bson.M{"$divide": bson.A{
				bson.M{"$subtract": bson.A{"$dateRange.end", "$dateRange.start"}},
				millisPerDay,
			}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":              nil,
			"totalItineraries": bson.M{"$sum": 1},
			"averageTripDays":  bson.M{"$avg": "$tripDays"},
			"averageCost":      bson.M{"$avg": "$estimatedCost"},
		}}},
	}

	cursor, err := e.itineraries.Aggregate(ctx, pipeline)
	if err != nil {
		return PlatformStats{}, err
	}
	defer cursor.Close(ctx)

	var rows []PlatformStats
	if err := cursor.All(ctx, &rows); err != nil {
		return PlatformStats{}, err
	}
	if len(rows) == 0 {
		return PlatformStats{}, nil
	}
	return rows[0], nil
}

// trendingDestinations lists destinations updated within the last three
// months whose trending index is 70 or higher, hottest first.
func (e *Engine) trendingDestinations(ctx context.Context) ([]TrendingDestination, error) {
	cutoff := time.Now().AddDate(0, -trendingWindowMonths, 0)

	filter := bson.M{
		"isActive":      true,
		"updatedAt":     bson.M{"$gte": cutoff},
		"trendingIndex": bson.M{"$gte": trendingIndexFloor},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "trendingIndex", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(trendingResultLimit).
		SetProjection(bson.M{
			"destinationId": 1,
			"name":          1,
			"city":          1,
			"country":       1,
			"avgRating":     1,
			"trendingIndex": 1,
			"imageUrl":      1,
		})

	cursor, err := e.destinations.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trending []TrendingDestination
	if err := cursor.All(ctx, &trending); err != nil {
		return nil, err
	}
	if trending == nil {
		trending = []TrendingDestination{}
	}
	return trending, nil
}
