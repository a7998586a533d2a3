package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var WeatherConditions = []string{"clear", "sunny", "cloudy", "rain", "snow", "storm", "fog", "windy"}

// DailyForecast is the forecast block of a single weather record.
type DailyForecast struct {
	TempMin           float64 `bson:"tempMin" json:"tempMin"`
	TempMax           float64 `bson:"tempMax" json:"tempMax"`
	TempAvg           float64 `bson:"tempAvg" json:"tempAvg"`
	Humidity          float64 `bson:"humidity" json:"humidity" validate:"gte=0,lte=100"`
	WindSpeed         float64 `bson:"windSpeed" json:"windSpeed" validate:"gte=0"`
	WindDirection     float64 `bson:"windDirection" json:"windDirection" validate:"gte=0,lte=360"`
	PrecipProbability float64 `bson:"precipProbability" json:"precipProbability" validate:"gte=0,lte=100"`
	PrecipAmount      float64 `bson:"precipAmount" json:"precipAmount" validate:"gte=0"`
	UVIndex           float64 `bson:"uvIndex,omitempty" json:"uvIndex,omitempty" validate:"gte=0,lte=11"`
	Condition         string  `bson:"condition" json:"condition" validate:"required,oneof=clear sunny cloudy rain snow storm fog windy"`
}

// MonthlyAverage is one entry of the optional 12-month historical series.
type MonthlyAverage struct {
	Month   int     `bson:"month" json:"month" validate:"gte=1,lte=12"`
	TempAvg float64 `bson:"tempAvg" json:"tempAvg"`
	Precip  float64 `bson:"precip" json:"precip" validate:"gte=0"`
}

// WeatherData holds one forecast document per (location, date) pair; a TTL
// index purges records older than 14 days.
type WeatherData struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LocationID         primitive.ObjectID `bson:"locationId" json:"locationId"`
	City               string             `bson:"city" json:"city" validate:"required"`
	Country            string             `bson:"country" json:"country" validate:"required"`
	Date               time.Time          `bson:"date" json:"date" validate:"required"`
	Forecast           DailyForecast      `bson:"forecast" json:"forecast" validate:"required"`
	HistoricalAverages []MonthlyAverage   `bson:"historicalAverages,omitempty" json:"historicalAverages,omitempty" validate:"omitempty,max=12,dive"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
