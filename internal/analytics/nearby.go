package analytics

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	nearbyResultLimit     = 20
	defaultNearbyRadiusKm = 5.0
	earthRadiusKm         = 6371.0
)

// NearbyPOI is the projection returned by FindNearbyPOIs, closest first.
type NearbyPOI struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Rating       float64            `bson:"rating" json:"rating"`
	PriceLevel   int                `bson:"priceLevel,omitempty" json:"priceLevel,omitempty"`
	OpeningHours string             `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	ImageURL     string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	DistanceKm   float64            `bson:"distanceKm" json:"distanceKm"`
}

// FindNearbyPOIs runs a $geoNear proximity query around the given point. The
// reported distance is the server-computed geodesic distance; $geoNear also
// guarantees ascending distance order. An optional category allow-list
// narrows the candidates.
func (e *Engine) FindNearbyPOIs(ctx context.Context, lng, lat, maxDistanceKm float64, categories []string) ([]NearbyPOI, error) {
	if maxDistanceKm <= 0 {
		maxDistanceKm = defaultNearbyRadiusKm
	}

	query := bson.M{"isActive": true}
	if len(categories) > 0 {
		query["category"] = bson.M{"$in": categories}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{lng, lat},
			},
			"distanceField": "distanceMeters",
			"maxDistance":   maxDistanceKm * 1000,
			"query":         query,
			"spherical":     true,
		}}},
		bson.D{{Key: "$limit", Value: nearbyResultLimit}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"distanceKm": bson.M{"$round": bson.A{
				bson.M{"$divide": bson.A{"$distanceMeters", 1000}},
				2,
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"name":         1,
			"category":     1,
			"address":      1,
			"rating":       1,
			"priceLevel":   1,
			"openingHours": 1,
			"imageUrl":     1,
			"distanceKm":   1,
		}}},
	}

	cursor, err := e.pois.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithError(err).Error("nearby POI aggregation failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []NearbyPOI
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []NearbyPOI{}
	}
	return results, nil
}

// haversineKm computes the great-circle distance between two points in
// kilometers. It backs the regression tests pinning FindNearbyPOIs to real
// geodesic distances.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
