// Package geomath provides great-circle distance and travel time helpers.
package geomath

import (
	"errors"
	"math"
	"time"
)

// EarthRadiusKM is the mean Earth radius used by the haversine formula.
const EarthRadiusKM = 6371.0

// ErrInvalidSpeed is returned when a travel time is requested for a
// non-positive speed.
var ErrInvalidSpeed = errors.New("speed must be positive")

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// Valid reports whether the coordinate is within |lat| <= 90 and |lon| <= 180.
func (c Coordinate) Valid() bool {
	return math.Abs(c.Lat) <= 90 && math.Abs(c.Lon) <= 180
}

// DistanceKM returns the great-circle distance between a and b in kilometers.
func DistanceKM(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKM * c
}

// TravelTime converts a distance at a given average speed into a duration.
func TravelTime(distanceKM, speedKMH float64) (time.Duration, error) {
	if speedKMH <= 0 {
		return 0, ErrInvalidSpeed
	}
	hours := distanceKM / speedKMH
	return time.Duration(hours * float64(time.Hour)), nil
}
