package service

import (
	"math"
)

const (
	earthRadiusKm = 6371

	// DefaultDistanceKm stands in when either side of a distance
	// calculation has no coordinates on record.
	DefaultDistanceKm = 10.0

	// Kuala Lumpur city center, used when a recipient browses
	// without a saved location.
	FallbackLatitude  = 3.139003
	FallbackLongitude = 101.686855
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance between two points in
// kilometers, rounded to one decimal.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*10) / 10
}

// DistanceTo computes the distance between two optionally known
// points. Any missing coordinate yields DefaultDistanceKm so listings
// without a pin still sort and filter predictably.
func DistanceTo(lat1, lon1, lat2, lon2 *float64) float64 {
	if lat1 == nil || lon1 == nil || lat2 == nil || lon2 == nil {
		return DefaultDistanceKm
	}
	return Distance(*lat1, *lon1, *lat2, *lon2)
}
