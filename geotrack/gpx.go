package geotrack

import (
	"fmt"
	"math"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
)

func loadGPXTrack(trackFilePath string, maxSize int64) ([]Trackpoint, error) {
	fi, err := os.Stat(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("stat GPX file: %w", err)
	}

	if maxSize > 0 && fi.Size() > maxSize {
		return nil, fmt.Errorf("%w: file has %d bytes, limit is %d", ErrMalformedInput, fi.Size(), maxSize)
	}

	buf, err := os.ReadFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read GPX file: %w", err)
	}

	return parseGPXTrack(buf)
}

// parseGPXTrack extracts the points of the first segment of the first track.
// Further tracks and segments are ignored.
func parseGPXTrack(buf []byte) ([]Trackpoint, error) {
	gpxData, err := gpx.ParseBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	if len(gpxData.Tracks) == 0 {
		return nil, fmt.Errorf("%w: no track", ErrMalformedInput)
	}
	track := gpxData.Tracks[0]

	if len(track.Segments) == 0 {
		return nil, fmt.Errorf("%w: no track segment", ErrMalformedInput)
	}
	segment := track.Segments[0]

	if err := checkPointAttributes(buf); err != nil {
		return nil, err
	}

	points := make([]Trackpoint, 0, len(segment.Points))
	for i, p := range segment.Points {
		if p.Elevation.Null() {
			return nil, fmt.Errorf("%w: point %d has no elevation", ErrMalformedInput, i)
		}

		// gpxgo leaves the timestamp zero when it is missing or unparseable
		if p.Timestamp.IsZero() {
			return nil, fmt.Errorf("%w: point %d has no valid time", ErrMalformedInput, i)
		}

		if !isFinite(p.Latitude) || !isFinite(p.Longitude) || !isFinite(p.Elevation.Value()) {
			return nil, fmt.Errorf("%w: point %d has a non-finite coordinate or elevation", ErrMalformedInput, i)
		}

		points = append(points, Trackpoint{
			Time:      p.Timestamp,
			Lat:       p.Latitude,
			Lon:       p.Longitude,
			Elevation: p.Elevation.Value(),
		})
	}

	return points, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
