package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/bgraf/trackpic/geotrack"
)

var ErrDegenerateRange = errors.New("degenerate range")

// DegeneratePolicy decides how an axis without extent (max == min) is
// projected.
type DegeneratePolicy int

const (
	// DegenerateCollapse maps every point of a degenerate axis to 0.
	DegenerateCollapse DegeneratePolicy = iota
	// DegenerateFail rejects a track with a degenerate axis.
	DegenerateFail
)

func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch s {
	case "collapse", "":
		return DegenerateCollapse, nil
	case "fail":
		return DegenerateFail, nil
	}
	return DegenerateCollapse, fmt.Errorf("unknown degenerate range policy '%s'", s)
}

func (p DegeneratePolicy) String() string {
	if p == DegenerateFail {
		return "fail"
	}
	return "collapse"
}

// Pixel is the projection of one trackpoint onto the canvas.
type Pixel struct {
	X, Y          int
	ElevationNorm float64
	Color         color.NRGBA
}

// Project maps each point onto a width x height canvas and colors it by its
// normalized elevation. The result has the same order as points. Row 0 is
// the southernmost latitude.
func Project(points []geotrack.Trackpoint, bounds geotrack.Bounds, width, height int, policy DegeneratePolicy) ([]Pixel, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	if !finiteBounds(bounds) {
		return nil, fmt.Errorf("%w: non-finite bounds %+v", ErrDegenerateRange, bounds)
	}

	if policy == DegenerateFail {
		if err := checkExtent(bounds); err != nil {
			return nil, err
		}
	}

	pixels := make([]Pixel, 0, len(points))
	for _, p := range points {
		x := normalize(p.Lon, bounds.MinLon, bounds.MaxLon, float64(width-1))
		y := normalize(p.Lat, bounds.MinLat, bounds.MaxLat, float64(height-1))
		elevNorm := normalize(p.Elevation, bounds.MinElevation, bounds.MaxElevation, MaxElevationNorm)

		pixels = append(pixels, Pixel{
			X:             clampInt(int(math.Floor(x)), 0, width-1),
			Y:             clampInt(int(math.Floor(y)), 0, height-1),
			ElevationNorm: elevNorm,
			Color:         ElevationColor(elevNorm),
		})
	}

	return pixels, nil
}

func checkExtent(b geotrack.Bounds) error {
	switch {
	case b.MaxLon == b.MinLon:
		return fmt.Errorf("%w: longitude %v", ErrDegenerateRange, b.MinLon)
	case b.MaxLat == b.MinLat:
		return fmt.Errorf("%w: latitude %v", ErrDegenerateRange, b.MinLat)
	case b.MaxElevation == b.MinElevation:
		return fmt.Errorf("%w: elevation %v", ErrDegenerateRange, b.MinElevation)
	}
	return nil
}

func finiteBounds(b geotrack.Bounds) bool {
	for _, v := range []float64{b.MinLon, b.MaxLon, b.MinLat, b.MaxLat, b.MinElevation, b.MaxElevation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// normalize rescales v from [lo, hi] to [0, scale]. An empty range yields 0.
func normalize(v, lo, hi, scale float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo) * scale
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
