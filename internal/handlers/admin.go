package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/database"
)

var managedCollections = map[string]bool{
	database.UsersCollection:        true,
	database.DestinationsCollection: true,
	database.POIsCollection:         true,
	database.ItinerariesCollection:  true,
	database.WeatherDataCollection:  true,
}

// InitIndexes re-runs the full index setup. Safe to call repeatedly; index
// creation is idempotent on the server.
func InitIndexes(manager *database.IndexManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/indexes/init"
		defer handlePanic(c, route)

		if err := manager.InitializeIndexes(c.Request.Context()); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		log.Printf("[%s] indexes initialized", route)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// DropIndexes drops every index on one managed collection. Used for
// migrations; a follow-up init restores the declared set.
func DropIndexes(manager *database.IndexManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/indexes/:collection"
		defer handlePanic(c, route)

		collection := c.Param("collection")
		if !managedCollections[collection] {
			respondWithError(c, http.StatusBadRequest, route, "unknown collection")
			return
		}

		if err := manager.DropCollectionIndexes(c.Request.Context(), collection); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ApplyValidations applies the collection validation schemas to every
// existing collection. Partial failures come back as a 500 carrying the
// joined error text while successful collections keep their new validators.
func ApplyValidations(validator *database.SchemaValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/validation/apply"
		defer handlePanic(c, route)

		if err := validator.ApplyAllValidations(c.Request.Context()); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		log.Printf("[%s] validation schemas applied", route)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
