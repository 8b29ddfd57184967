package geotrack

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported track format")
	ErrMalformedInput    = errors.New("malformed track")
	ErrEmptyTrack        = errors.New("track has no points")
)
