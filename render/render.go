package render

import (
	"fmt"
	"image/color"

	"github.com/bgraf/trackpic/geotrack"
	"github.com/rs/zerolog"
)

type Options struct {
	Width, Height int
	Background    color.Color
	Degenerate    DegeneratePolicy
	Logger        zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:      500,
		Height:     500,
		Background: color.Black,
		Degenerate: DegenerateCollapse,
	}
}

// Render draws points onto a new canvas: the track is summarized, every
// point projected and colored, and the canvas flipped so north is up.
// Nothing is drawn unless every step succeeds.
func Render(points []geotrack.Trackpoint, opts Options) (*Canvas, error) {
	bounds, err := geotrack.Summarize(points)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug().
		Int("points", len(points)).
		Float64("minLon", bounds.MinLon).Float64("maxLon", bounds.MaxLon).
		Float64("minLat", bounds.MinLat).Float64("maxLat", bounds.MaxLat).
		Float64("minElevation", bounds.MinElevation).Float64("maxElevation", bounds.MaxElevation).
		Msg("track summarized")

	pixels, err := Project(points, bounds, opts.Width, opts.Height, opts.Degenerate)
	if err != nil {
		return nil, fmt.Errorf("project track: %w", err)
	}

	canvas := NewCanvas(opts.Width, opts.Height, opts.Background)
	for _, px := range pixels {
		canvas.Set(px.X, px.Y, px.Color)
	}

	canvas.FlipVertical()

	opts.Logger.Debug().Int("width", opts.Width).Int("height", opts.Height).Msg("track rendered")

	return canvas, nil
}
