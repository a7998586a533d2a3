package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// POI categories form a fixed enum; everything else lands in "other".
const (
	POICategoryRestaurant    = "restaurant"
	POICategoryCafe          = "cafe"
	POICategoryAttraction    = "attraction"
	POICategoryMuseum        = "museum"
	POICategoryPark          = "park"
	POICategoryShopping      = "shopping"
	POICategoryNightlife     = "nightlife"
	POICategoryTransport     = "transport"
	POICategoryAccommodation = "accommodation"
	POICategoryOther         = "other"
)

// POICategories lists every valid category, in the order shown to clients.
var POICategories = []string{
	POICategoryRestaurant,
	POICategoryCafe,
	POICategoryAttraction,
	POICategoryMuseum,
	POICategoryPark,
	POICategoryShopping,
	POICategoryNightlife,
	POICategoryTransport,
	POICategoryAccommodation,
	POICategoryOther,
}

// POIContact captures the optional contact details of a point of interest.
type POIContact struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// PointOfInterest is a single visitable place belonging to a destination.
type PointOfInterest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=2000"`
	Category      string             `bson:"category" json:"category" validate:"required,oneof=restaurant cafe attraction museum park shopping nightlife transport accommodation other"`
	Location      GeoPoint           `bson:"location" json:"location" validate:"required"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Rating        float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	PriceLevel    int                `bson:"priceLevel,omitempty" json:"priceLevel,omitempty" validate:"omitempty,gte=1,lte=5"`
	OpeningHours  string             `bson:"openingHours,omitempty" json:"openingHours,omitempty"`
	Contact       POIContact         `bson:"contact,omitempty" json:"contact,omitempty"`
	DestinationID primitive.ObjectID `bson:"destinationId" json:"destinationId"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
