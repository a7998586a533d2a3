package models

// GeoPoint is a GeoJSON Point. Coordinates are always [longitude, latitude],
// matching the order MongoDB's 2dsphere indexes expect.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type" validate:"required,eq=Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" validate:"required,len=2"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) != 2 {
		return 0
	}
	return p.Coordinates[1]
}
