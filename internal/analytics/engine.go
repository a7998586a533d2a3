package analytics

import (
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserNotFound is returned when a personalization query references a user
// id that does not resolve. Callers map it to a 404.
var ErrUserNotFound = errors.New("user not found")

const millisPerDay = 1000 * 60 * 60 * 24

// Engine computes derived, read-only views over the travel collections.
// Every method is a pure function of the current collection contents and its
// arguments; nothing here writes source documents.
type Engine struct {
	users        *mongo.Collection
	destinations *mongo.Collection
	pois         *mongo.Collection
	itineraries  *mongo.Collection
	log          *logrus.Logger
}

// NewEngine wires the engine to its collection handles. Handles are passed
// explicitly so tests and callers control exactly what the engine reads.
func NewEngine(users, destinations, pois, itineraries *mongo.Collection, log *logrus.Logger) *Engine {
	return &Engine{
		users:        users,
		destinations: destinations,
		pois:         pois,
		itineraries:  itineraries,
		log:          log,
	}
}
