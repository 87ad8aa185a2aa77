package geo

import (
	"math"

	"github.com/umahmood/haversine"
)

// DistanceMeters returns the great-circle distance in meters between two
// WGS84 coordinates. Accurate to a few meters over the distances involved in
// nearby-station searches.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	from := haversine.Coord{Lat: lat1, Lon: lon1}
	to := haversine.Coord{Lat: lat2, Lon: lon2}
	_, km := haversine.Distance(from, to)
	return km * 1000
}

// RoundTo1 rounds a distance to one decimal place.
func RoundTo1(meters float64) float64 {
	return math.Round(meters*10) / 10
}
