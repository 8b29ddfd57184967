package geotrack

// Bounds holds the extrema of a track's coordinates and elevations.
type Bounds struct {
	MinLon       float64 `json:"minLon"`
	MaxLon       float64 `json:"maxLon"`
	MinLat       float64 `json:"minLat"`
	MaxLat       float64 `json:"maxLat"`
	MinElevation float64 `json:"minElevation"`
	MaxElevation float64 `json:"maxElevation"`
}

// Summarize computes the bounds of points in a single pass. The running
// extrema are seeded with the first point, so a single point yields
// min == max on every field.
func Summarize(points []Trackpoint) (Bounds, error) {
	if len(points) == 0 {
		return Bounds{}, ErrEmptyTrack
	}

	first := points[0]
	b := Bounds{
		MinLon: first.Lon, MaxLon: first.Lon,
		MinLat: first.Lat, MaxLat: first.Lat,
		MinElevation: first.Elevation, MaxElevation: first.Elevation,
	}

	for _, p := range points[1:] {
		b.MinLon = min(b.MinLon, p.Lon)
		b.MaxLon = max(b.MaxLon, p.Lon)
		b.MinLat = min(b.MinLat, p.Lat)
		b.MaxLat = max(b.MaxLat, p.Lat)
		b.MinElevation = min(b.MinElevation, p.Elevation)
		b.MaxElevation = max(b.MaxElevation, p.Elevation)
	}

	return b, nil
}

// Contains reports whether p lies within the bounds on all three axes.
func (b Bounds) Contains(p Trackpoint) bool {
	return b.MinLon <= p.Lon && p.Lon <= b.MaxLon &&
		b.MinLat <= p.Lat && p.Lat <= b.MaxLat &&
		b.MinElevation <= p.Elevation && p.Elevation <= b.MaxElevation
}
