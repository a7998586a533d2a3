package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Destination is a city/region travellers can add to an itinerary.
type Destination struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DestinationID string             `bson:"destinationId" json:"destinationId" validate:"required"`
	Name          string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	City          string             `bson:"city" json:"city" validate:"required"`
	Country       string             `bson:"country" json:"country" validate:"required"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=2000"`
	Location      GeoPoint           `bson:"location" json:"location" validate:"required"`
	Categories    []string           `bson:"categories" json:"categories"`
	AvgRating     float64            `bson:"avgRating" json:"avgRating" validate:"gte=0,lte=5"`
	ReviewCount   int                `bson:"reviewCount" json:"reviewCount" validate:"gte=0"`
	VisitCount    int                `bson:"visitCount" json:"visitCount" validate:"gte=0"`
	TrendingIndex int                `bson:"trendingIndex" json:"trendingIndex" validate:"gte=0,lte=100"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
