package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CostFilters narrows GetCostStatistics to a destination and/or a trip start
// date window. GroupByDestination switches from one overall summary to one
// summary per destination.
type CostFilters struct {
	DestinationID      *primitive.ObjectID
	From               *time.Time
	To                 *time.Time
	GroupByDestination bool
}

// CostBreakdownAverages holds per-category average spend.
type CostBreakdownAverages struct {
	Accommodation float64 `bson:"accommodation" json:"accommodation"`
	Transport     float64 `bson:"transport" json:"transport"`
	Food          float64 `bson:"food" json:"food"`
	Activities    float64 `bson:"activities" json:"activities"`
	Misc          float64 `bson:"misc" json:"misc"`
}

// CostSummary is the statistical rollup of a set of itinerary costs.
type CostSummary struct {
	TripCount   int                   `json:"tripCount"`
	AverageCost float64               `json:"averageCost"`
	MinCost     float64               `json:"minCost"`
	MaxCost     float64               `json:"maxCost"`
	MedianCost  float64               `json:"medianCost"`
	P25Cost     float64               `json:"p25Cost"`
	P75Cost     float64               `json:"p75Cost"`
	Breakdown   CostBreakdownAverages `json:"breakdown"`
}

// DestinationCostSummary is a cost summary for one destination, enriched
// with its name and location.
type DestinationCostSummary struct {
	DestinationID primitive.ObjectID `json:"destinationId"`
	Name          string             `json:"name"`
	City          string             `json:"city"`
	Country       string             `json:"country"`
	CostSummary
}

// CostStatistics is either an overall summary or a per-destination list,
// depending on CostFilters.GroupByDestination.
type CostStatistics struct {
	Overall       *CostSummary             `json:"overall,omitempty"`
	ByDestination []DestinationCostSummary `json:"byDestination,omitempty"`
}

// GetCostStatistics computes avg/min/max/median (plus quartiles) of
// estimated trip costs and the per-category breakdown averages. Costs are
// collected server-side; the order statistics are computed in-process over
// the collected values.
func (e *Engine) GetCostStatistics(ctx context.Context, filters CostFilters) (CostStatistics, error) {
	match := bson.M{}
	if filters.DestinationID != nil {
		match["destinations.destinationId"] = *filters.DestinationID
	}
	if dateFilter := startDateFilter(filters.From, filters.To); dateFilter != nil {
		match["dateRange.start"] = dateFilter
	}

	if filters.GroupByDestination {
		return e.costStatsByDestination(ctx, match, filters.DestinationID)
	}
	return e.costStatsOverall(ctx, match)
}

func startDateFilter(from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return nil
	}
	filter := bson.M{}
	if from != nil {
		filter["$gte"] = *from
	}
	if to != nil {
		filter["$lte"] = *to
	}
	return filter
}

func (e *Engine) costStatsOverall(ctx context.Context, match bson.M) (CostStatistics, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"costs":         bson.M{"$push": "$estimatedCost"},
			"accommodation": bson.M{"$avg": "$costBreakdown.accommodation"},
			"transport":     bson.M{"$avg": "$costBreakdown.transport"},
			"food":          bson.M{"$avg": "$costBreakdown.food"},
			"activities":    bson.M{"$avg": "$costBreakdown.activities"},
			"misc":          bson.M{"$avg": "$costBreakdown.misc"},
		}}},
	}

	cursor, err := e.itineraries.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithError(err).Error("cost statistics aggregation failed")
		return CostStatistics{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Costs                 []float64 `bson:"costs"`
		CostBreakdownAverages `bson:",inline"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return CostStatistics{}, err
	}
	if len(rows) == 0 {
		return CostStatistics{Overall: &CostSummary{}}, nil
	}

	summary := summarizeCosts(rows[0].Costs)
	summary.Breakdown = rows[0].CostBreakdownAverages
	return CostStatistics{Overall: &summary}, nil
}

func (e *Engine) costStatsByDestination(ctx context.Context, match bson.M, destinationID *primitive.ObjectID) (CostStatistics, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: "$destinations"}},
	}
	// After the unwind, the containment filter has to be re-applied so only
	// the requested destination's rows survive.
	if destinationID != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"destinations.destinationId": *destinationID,
		}}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.M{
		"_id":           "$destinations.destinationId",
		"costs":         bson.M{"$push": "$estimatedCost"},
		"accommodation": bson.M{"$avg": "$costBreakdown.accommodation"},
		"transport":     bson.M{"$avg": "$costBreakdown.transport"},
		"food":          bson.M{"$avg": "$costBreakdown.food"},
		"activities":    bson.M{"$avg": "$costBreakdown.activities"},
		"misc":          bson.M{"$avg": "$costBreakdown.misc"},
	}}})

	cursor, err := e.itineraries.Aggregate(ctx, pipeline)
	if err != nil {
		e.log.WithError(err).Error("grouped cost statistics aggregation failed")
		return CostStatistics{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID                    primitive.ObjectID `bson:"_id"`
		Costs                 []float64          `bson:"costs"`
		CostBreakdownAverages `bson:",inline"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return CostStatistics{}, err
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	names, err := e.destinationNames(ctx, ids)
	if err != nil {
		return CostStatistics{}, err
	}

	groups := make([]DestinationCostSummary, 0, len(rows))
	for _, row := range rows {
		summary := summarizeCosts(row.Costs)
		summary.Breakdown = row.CostBreakdownAverages
		group := DestinationCostSummary{
			DestinationID: row.ID,
			CostSummary:   summary,
		}
		if info, ok := names[row.ID]; ok {
			group.Name = info.Name
			group.City = info.City
			group.Country = info.Country
		}
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].AverageCost != groups[j].AverageCost {
			return groups[i].AverageCost > groups[j].AverageCost
		}
		return groups[i].DestinationID.Hex() < groups[j].DestinationID.Hex()
	})

	return CostStatistics{ByDestination: groups}, nil
}

type destinationInfo struct {
	Name    string `bson:"name"`
	City    string `bson:"city"`
	Country string `bson:"country"`
}

func (e *Engine) destinationNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]destinationInfo, error) {
	names := make(map[primitive.ObjectID]destinationInfo, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1, "city": 1, "country": 1})
	cursor, err := e.destinations.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID      primitive.ObjectID `bson:"_id"`
		Name    string             `bson:"name"`
		City    string             `bson:"city"`
		Country string             `bson:"country"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		names[doc.ID] = destinationInfo{Name: doc.Name, City: doc.City, Country: doc.Country}
	}
	return names, nil
}

// summarizeCosts computes the order statistics of a cost set. The median is
// the true interpolated median, averaging the two middle values for an even
// count.
func summarizeCosts(costs []float64) CostSummary {
	if len(costs) == 0 {
		return CostSummary{}
	}

	minCost, _ := stats.Min(costs)
	maxCost, _ := stats.Max(costs)
	mean, _ := stats.Mean(costs)
	median, _ := stats.Median(costs)
	p25, _ := stats.Percentile(costs, 25)
	p75, _ := stats.Percentile(costs, 75)

	return CostSummary{
		TripCount:   len(costs),
		AverageCost: mean,
		MinCost:     minCost,
		MaxCost:     maxCost,
		MedianCost:  median,
		P25Cost:     p25,
		P75Cost:     p75,
	}
}
