package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/database"
	"backend/internal/models"
)

// LoadSampleData inserts a small development dataset when the destinations
// collection is empty. Production deployments never enable this.
func LoadSampleData(ctx context.Context, db *mongo.Database, log *logrus.Logger) error {
	count, err := db.Collection(database.DestinationsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug("sample data skipped, destinations collection not empty")
		return nil
	}

	now := time.Now()
	destinations := sampleDestinations(now)

	destinationDocs := make([]interface{}, 0, len(destinations))
	for i := range destinations {
		if err := models.Validate(&destinations[i]); err != nil {
			return err
		}
		destinationDocs = append(destinationDocs, destinations[i])
	}
	if _, err := db.Collection(database.DestinationsCollection).InsertMany(ctx, destinationDocs); err != nil {
		return err
	}

	pois := samplePOIs(destinations, now)
	poiDocs := make([]interface{}, 0, len(pois))
	for i := range pois {
		if err := models.Validate(&pois[i]); err != nil {
			return err
		}
		poiDocs = append(poiDocs, pois[i])
	}
	if _, err := db.Collection(database.POIsCollection).InsertMany(ctx, poiDocs); err != nil {
		return err
	}

	users, err := sampleUsers(now)
	if err != nil {
		return err
	}
	userDocs := make([]interface{}, 0, len(users))
	for i := range users {
		if err := models.Validate(&users[i]); err != nil {
			return err
		}
		userDocs = append(userDocs, users[i])
	}
	if _, err := db.Collection(database.UsersCollection).InsertMany(ctx, userDocs); err != nil {
		return err
	}

	itineraries := sampleItineraries(users, destinations, now)
	itineraryDocs := make([]interface{}, 0, len(itineraries))
	for i := range itineraries {
		if err := models.Validate(&itineraries[i]); err != nil {
			return err
		}
		itineraryDocs = append(itineraryDocs, itineraries[i])
	}
	if _, err := db.Collection(database.ItinerariesCollection).InsertMany(ctx, itineraryDocs); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"destinations": len(destinations),
		"pois":         len(pois),
		"users":        len(users),
		"itineraries":  len(itineraries),
	}).Info("sample data loaded")
	return nil
}

func sampleDestinations(now time.Time) []models.Destination {
	return []models.Destination{
		{
			ID:            primitive.NewObjectID(),
			DestinationID: uuid.NewString(),
			Name:          "Lisbon",
			City:          "Lisbon",
			Country:       "Portugal",
			Description:   "Hilly coastal capital known for its historic trams and viewpoints.",
			Location:      models.NewGeoPoint(-9.1393, 38.7223),
			Categories:    []string{"beach", "history", "food"},
			AvgRating:     4.6,
			ReviewCount:   812,
			VisitCount:    5400,
			TrendingIndex: 85,
			IsActive:      true,
			CreatedAt:     now.AddDate(0, -8, 0),
			UpdatedAt:     now.AddDate(0, 0, -3),
		},
		{
			ID:            primitive.NewObjectID(),
			DestinationID: uuid.NewString(),
			Name:          "Kyoto",
			City:          "Kyoto",
			Country:       "Japan",
			Description:   "Former imperial capital with over a thousand temples and shrines.",
			Location:      models.NewGeoPoint(135.7681, 35.0116),
			Categories:    []string{"history", "culture", "nature"},
			AvgRating:     4.8,
			ReviewCount:   1430,
			VisitCount:    7200,
			TrendingIndex: 72,
			IsActive:      true,
			CreatedAt:     now.AddDate(-1, -2, 0),
			UpdatedAt:     now.AddDate(0, -1, 0),
		},
		{
			ID:            primitive.NewObjectID(),
			DestinationID: uuid.NewString(),
			Name:          "Islamabad",
			City:          "Islamabad",
			Country:       "Pakistan",
			Description:   "Green planned capital at the foot of the Margalla Hills.",
			Location:      models.NewGeoPoint(73.0479, 33.6844),
			Categories:    []string{"nature", "hiking"},
			AvgRating:     4.2,
			ReviewCount:   96,
			VisitCount:    900,
			TrendingIndex: 40,
			IsActive:      true,
			CreatedAt:     now.AddDate(0, 0, -20),
			UpdatedAt:     now.AddDate(0, 0, -2),
		},
	}
}

func samplePOIs(destinations []models.Destination, now time.Time) []models.PointOfInterest {
	return []models.PointOfInterest{
		{
			ID:            primitive.NewObjectID(),
			Name:          "Faisal Mosque",
			Description:   "Landmark mosque beneath the Margalla Hills.",
			Category:      models.POICategoryAttraction,
			Location:      models.NewGeoPoint(73.0372, 33.7295),
			Address:       "Shah Faisal Ave, Islamabad",
			Rating:        4.9,
			PriceLevel:    1,
			OpeningHours:  "08:00-22:00",
			DestinationID: destinations[2].ID,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            primitive.NewObjectID(),
			Name:          "Monal Restaurant",
			Description:   "Hillside restaurant overlooking the city.",
			Category:      models.POICategoryRestaurant,
			Location:      models.NewGeoPoint(73.0595, 33.7482),
			Address:       "Pir Sohawa Rd, Islamabad",
			Rating:        4.4,
			PriceLevel:    3,
			OpeningHours:  "12:00-23:00",
			DestinationID: destinations[2].ID,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            primitive.NewObjectID(),
			Name:          "Fushimi Inari Taisha",
			Description:   "Shrine famous for its thousands of vermilion torii gates.",
			Category:      models.POICategoryAttraction,
			Location:      models.NewGeoPoint(135.7727, 34.9671),
			Address:       "68 Fukakusa Yabunouchicho, Kyoto",
			Rating:        4.7,
			PriceLevel:    1,
			OpeningHours:  "24h",
			DestinationID: destinations[1].ID,
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
}

func sampleUsers(now time.Time) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return []models.User{
		{
			ID:           primitive.NewObjectID(),
			Email:        "demo@example.com",
			Username:     "demo_traveller",
			PasswordHash: string(hash),
			Profile: models.UserProfile{
				Name:     "Demo Traveller",
				Age:      29,
				Gender:   "prefer_not_to_say",
				Location: "Lisbon",
			},
			Preferences: []string{"history", "food"},
			Role:        models.RoleUser,
			IsActive:    true,
			CreatedAt:   now.AddDate(0, -6, 0),
			UpdatedAt:   now,
		},
		{
			ID:           primitive.NewObjectID(),
			Email:        "admin@example.com",
			Username:     "demo_admin",
			PasswordHash: string(hash),
			Preferences:  []string{},
			Role:         models.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now.AddDate(0, -6, 0),
			UpdatedAt:    now,
		},
	}, nil
}

func sampleItineraries(users []models.User, destinations []models.Destination, now time.Time) []models.Itinerary {
	return []models.Itinerary{
		{
			ID:     primitive.NewObjectID(),
			UserID: users[0].ID,
			Title:  "Spring week in Kyoto",
			DateRange: models.DateRange{
				Start: now.AddDate(0, -2, 0),
				End:   now.AddDate(0, -2, 7),
			},
			Destinations: []models.ItineraryDestination{
				{DestinationID: destinations[1].ID, Order: 0},
			},
			Transportation: "flight",
			EstimatedCost:  2100,
			CostBreakdown: models.CostBreakdown{
				Accommodation: 800,
				Transport:     700,
				Food:          350,
				Activities:    200,
				Misc:          50,
			},
			Status:     models.ItineraryStatusCompleted,
			Visibility: models.VisibilityPrivate,
			CreatedAt:  now.AddDate(0, -3, 0),
			UpdatedAt:  now.AddDate(0, -2, 0),
		},
		{
			ID:     primitive.NewObjectID(),
			UserID: users[0].ID,
			Title:  "Lisbon long weekend",
			DateRange: models.DateRange{
				Start: now.AddDate(0, 1, 0),
				End:   now.AddDate(0, 1, 3),
			},
			Destinations: []models.ItineraryDestination{
				{DestinationID: destinations[0].ID, Order: 0},
			},
			Transportation: "flight",
			EstimatedCost:  900,
			CostBreakdown: models.CostBreakdown{
				Accommodation: 400,
				Transport:     250,
				Food:          150,
				Activities:    80,
				Misc:          20,
			},
			Status:     models.ItineraryStatusPlanning,
			Visibility: models.VisibilityShared,
			SharedWith: []primitive.ObjectID{users[1].ID},
			CreatedAt:  now.AddDate(0, 0, -10),
			UpdatedAt:  now.AddDate(0, 0, -1),
		},
	}
}
