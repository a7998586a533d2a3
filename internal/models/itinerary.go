package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ItineraryStatusPlanning   = "planning"
	ItineraryStatusConfirmed  = "confirmed"
	ItineraryStatusInProgress = "in-progress"
	ItineraryStatusCompleted  = "completed"
	ItineraryStatusCancelled  = "cancelled"
)

const (
	VisibilityPrivate = "private"
	VisibilityShared  = "shared"
	VisibilityPublic  = "public"
)

var TransportationTypes = []string{"flight", "train", "bus", "car", "ferry", "mixed"}

// DateRange is a closed interval; End must not precede Start.
type DateRange struct {
	Start time.Time `bson:"start" json:"start" validate:"required"`
	End   time.Time `bson:"end" json:"end" validate:"required,gtefield=Start"`
}

// ItineraryDestination is one ordered stop on a trip.
type ItineraryDestination struct {
	DestinationID primitive.ObjectID `bson:"destinationId" json:"destinationId"`
	Order         int                `bson:"order" json:"order" validate:"gte=0"`
	Stay          *DateRange         `bson:"stay,omitempty" json:"stay,omitempty"`
	Accommodation string             `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
}

// ScheduledActivity pins a POI visit to a day and time slot.
type ScheduledActivity struct {
	POIID primitive.ObjectID `bson:"poiId" json:"poiId"`
	Date  time.Time          `bson:"date" json:"date"`
	Time  string             `bson:"time,omitempty" json:"time,omitempty"`
}

// CostBreakdown splits the estimated trip cost by spending category.
type CostBreakdown struct {
	Accommodation float64 `bson:"accommodation" json:"accommodation" validate:"gte=0"`
	Transport     float64 `bson:"transport" json:"transport" validate:"gte=0"`
	Food          float64 `bson:"food" json:"food" validate:"gte=0"`
	Activities    float64 `bson:"activities" json:"activities" validate:"gte=0"`
	Misc          float64 `bson:"misc" json:"misc" validate:"gte=0"`
}

// Itinerary is a user's planned trip.
type Itinerary struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID     `bson:"userId" json:"userId"`
	Title          string                 `bson:"title" json:"title" validate:"required,min=1,max=150"`
	DateRange      DateRange              `bson:"dateRange" json:"dateRange" validate:"required"`
	Destinations   []ItineraryDestination `bson:"destinations" json:"destinations" validate:"dive"`
	Activities     []ScheduledActivity    `bson:"activities,omitempty" json:"activities,omitempty"`
	Transportation string                 `bson:"transportation,omitempty" json:"transportation,omitempty" validate:"omitempty,oneof=flight train bus car ferry mixed"`
	EstimatedCost  float64                `bson:"estimatedCost" json:"estimatedCost" validate:"gte=0"`
	CostBreakdown  CostBreakdown          `bson:"costBreakdown,omitempty" json:"costBreakdown,omitempty"`
	Status         string                 `bson:"status" json:"status" validate:"required,oneof=planning confirmed in-progress completed cancelled"`
	Visibility     string                 `bson:"visibility" json:"visibility" validate:"required,oneof=private shared public"`
	SharedWith     []primitive.ObjectID   `bson:"sharedWith,omitempty" json:"sharedWith,omitempty"`
	CreatedAt      time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time              `bson:"updatedAt" json:"updatedAt"`
}
