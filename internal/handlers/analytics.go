package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/analytics"
	"backend/internal/cache"
)

// GetPopularDestinations serves the popularity ranking, cached for the
// configured report TTL since it scans the whole destinations collection.
func GetPopularDestinations(engine *analytics.Engine, reports *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/destinations/popular"
		defer handlePanic(c, route)

		limit, err := parseLimitParam(c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid limit param")
			return
		}

		cacheKey := fmt.Sprintf("analytics:popular:%d", limit)
		var cached []analytics.PopularDestination
		if reports.GetJSON(c.Request.Context(), cacheKey, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		results, err := engine.GetPopularDestinations(c.Request.Context(), limit)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		reports.SetJSON(c.Request.Context(), cacheKey, results)
		log.Printf("[%s] returning %d destinations", route, len(results))
		c.JSON(http.StatusOK, results)
	}
}

// GetRecommendations serves personalized destination recommendations for a
// user. Unknown users are a 404, per the engine's not-found contract.
func GetRecommendations(engine *analytics.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/users/:userId/recommendations"
		defer handlePanic(c, route)

		userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid user id")
			return
		}
		limit, err := parseLimitParam(c.Query("limit"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid limit param")
			return
		}

		results, err := engine.GetPersonalizedRecommendations(c.Request.Context(), userID, limit)
		if errors.Is(err, analytics.ErrUserNotFound) {
			respondWithError(c, http.StatusNotFound, route, "user not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, results)
	}
}

// GetTravelStats serves a user's itinerary rollup. No itineraries is a valid
// empty state and returns the zeroed structure.
func GetTravelStats(engine *analytics.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/users/:userId/travel-stats"
		defer handlePanic(c, route)

		userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid user id")
			return
		}

		stats, err := engine.GetUserTravelStats(c.Request.Context(), userID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

type nearbyQuery struct {
	Lng      *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Lat      *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	RadiusKm float64  `form:"radius" binding:"omitempty,gt=0,lte=100"`
	// Comma-separated category allow-list.
	Categories string `form:"categories"`
}

// GetNearbyPOIs serves the geospatial proximity search.
func GetNearbyPOIs(engine *analytics.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/pois/nearby"
		defer handlePanic(c, route)

		var q nearbyQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid query params")
			return
		}

		var categories []string
		for _, raw := range strings.Split(q.Categories, ",") {
			if category := strings.TrimSpace(raw); category != "" {
				categories = append(categories, category)
			}
		}

		results, err := engine.FindNearbyPOIs(c.Request.Context(), *q.Lng, *q.Lat, q.RadiusKm, categories)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		log.Printf("[%s] returning %d POIs", route, len(results))
		c.JSON(http.StatusOK, results)
	}
}

// GetTravelTrends serves the three-part trend report, cached like the
// popularity ranking.
func GetTravelTrends(engine *analytics.Engine, reports *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/trends"
		defer handlePanic(c, route)

		const cacheKey = "analytics:trends"
		var cached analytics.TravelTrends
		if reports.GetJSON(c.Request.Context(), cacheKey, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		trends, err := engine.GetTravelTrends(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		reports.SetJSON(c.Request.Context(), cacheKey, trends)
		c.JSON(http.StatusOK, trends)
	}
}

// GetCostStatistics serves the cost rollups with optional destination/date
// filters and optional per-destination grouping.
func GetCostStatistics(engine *analytics.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /analytics/costs"
		defer handlePanic(c, route)

		filters, err := parseCostFilters(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		statistics, err := engine.GetCostStatistics(c.Request.Context(), filters)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, statistics)
	}
}

func parseCostFilters(c *gin.Context) (analytics.CostFilters, error) {
	var filters analytics.CostFilters

	if raw := strings.TrimSpace(c.Query("destinationId")); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return filters, errors.New("invalid destinationId param")
		}
		filters.DestinationID = &id
	}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("invalid from param, want RFC3339")
		}
		filters.From = &from
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filters, errors.New("invalid to param, want RFC3339")
		}
		filters.To = &to
	}
	filters.GroupByDestination = c.Query("groupByDestination") == "true"

	return filters, nil
}
