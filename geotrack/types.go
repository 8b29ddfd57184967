package geotrack

import "time"

// Trackpoint is a single GPS sample as read from a track file.
type Trackpoint struct {
	Time      time.Time
	Lat, Lon  float64
	Elevation float64
}
