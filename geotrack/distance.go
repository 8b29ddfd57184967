package geotrack

import (
	"time"

	"github.com/jftuga/geodist"
)

// TrackLength returns the summed great-circle distance between consecutive
// points in kilometers.
func TrackLength(points []Trackpoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		prev := geodist.Coord{Lat: points[i-1].Lat, Lon: points[i-1].Lon}
		cur := geodist.Coord{Lat: points[i].Lat, Lon: points[i].Lon}
		_, dkm := geodist.HaversineDistance(prev, cur)
		total += dkm
	}

	return total
}

// Duration returns the time between the first and the last point.
func Duration(points []Trackpoint) time.Duration {
	if len(points) < 2 {
		return 0
	}

	return points[len(points)-1].Time.Sub(points[0].Time)
}
