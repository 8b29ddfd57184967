package geotrack

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bgraf/trackpic/config"
)

// LoadTrack reads the trackpoints of the given track file in file order.
// The file type is chosen by its extension, ignoring case.
func LoadTrack(trackFilePath string) (points []Trackpoint, err error) {
	ext := strings.ToLower(filepath.Ext(trackFilePath))
	if !slices.Contains(config.GPXExtensions(), ext) {
		return nil, fmt.Errorf("%w: unknown track extension '%s'", ErrUnsupportedFormat, ext)
	}

	return loadGPXTrack(trackFilePath, config.MaxTrackFileSize())
}
