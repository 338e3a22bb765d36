// Package geo provides great-circle geometry over E7 fixed-point
// coordinates.
package geo

import (
	"math"

	"github.com/inovacc/routeguided/internal/model"
)

const (
	// coordFactor converts E7 fixed-point coordinates to degrees
	coordFactor = 1e7

	// earthRadiusMeters is the mean Earth radius used by the haversine formula
	earthRadiusMeters = 6371000
)

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance between two points in meters,
// computed with the haversine formula.
// The formula is based on http://mathforum.org/library/drmath/view/51879.html
func Distance(a, b model.Point) float64 {
	lat1 := float64(a.Latitude) / coordFactor
	lat2 := float64(b.Latitude) / coordFactor
	lon1 := float64(a.Longitude) / coordFactor
	lon2 := float64(b.Longitude) / coordFactor

	latRad1 := ToRadians(lat1)
	latRad2 := ToRadians(lat2)
	deltaLatRad := ToRadians(lat2 - lat1)
	deltaLonRad := ToRadians(lon2 - lon1)

	h := math.Pow(math.Sin(deltaLatRad/2), 2) +
		math.Cos(latRad1)*math.Cos(latRad2)*math.Pow(math.Sin(deltaLonRad/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
