package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/analytics"
	"backend/internal/cache"
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/logger"
	"backend/internal/middleware"
	"backend/internal/seed"
)

func main() {
	config.Load()
	log := logger.New(config.AppEnv.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, config.AppEnv.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("MongoDB connection failed")
	}
	db := client.Database(config.AppEnv.DBName)
	log.WithField("database", db.Name()).Info("MongoDB connected")

	reports, err := cache.New(ctx, config.AppEnv.RedisAddr, config.AppEnv.RedisPassword, config.AppEnv.ReportCacheTTL)
	if err != nil {
		// The report cache is optional; a nil cache never hits.
		log.WithError(err).Warn("Redis unavailable, running without report cache")
		reports = nil
	}

	indexManager := database.NewIndexManager(db, log)
	if err := indexManager.InitializeIndexes(ctx); err != nil {
		log.WithError(err).Fatal("index initialization failed")
	}

	schemaValidator := database.NewSchemaValidator(db, log)
	if err := schemaValidator.ApplyAllValidations(ctx); err != nil {
		// Partial-success contract: collections that validated keep their
		// schemas, the rest are reported here and retried via the admin API.
		log.WithError(err).Error("some validation schemas could not be applied")
	}

	if config.AppEnv.SeedSampleData {
		if err := seed.LoadSampleData(ctx, db, log); err != nil {
			log.WithError(err).Fatal("sample data load failed")
		}
	}

	engine := analytics.NewEngine(
		db.Collection(database.UsersCollection),
		db.Collection(database.DestinationsCollection),
		db.Collection(database.POIsCollection),
		db.Collection(database.ItinerariesCollection),
		log,
	)

	r := gin.Default()

	analyticsGroup := r.Group("/analytics")
	{
		analyticsGroup.GET("/destinations/popular", handlers.GetPopularDestinations(engine, reports))
		analyticsGroup.GET("/users/:userId/recommendations", handlers.GetRecommendations(engine))
		analyticsGroup.GET("/users/:userId/travel-stats", handlers.GetTravelStats(engine))
		analyticsGroup.GET("/pois/nearby", handlers.GetNearbyPOIs(engine))
		analyticsGroup.GET("/trends", handlers.GetTravelTrends(engine, reports))
		analyticsGroup.GET("/costs", handlers.GetCostStatistics(engine))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.POST("/indexes/init", handlers.InitIndexes(indexManager))
		admin.DELETE("/indexes/:collection", handlers.DropIndexes(indexManager))
		admin.POST("/validation/apply", handlers.ApplyValidations(schemaValidator))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
