package geotrack

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// checkPointAttributes walks the first segment of the first track and
// makes sure every trkpt carries both a lat and a lon attribute. gpxgo
// decodes an absent coordinate attribute as 0, so absence is only visible
// in the raw document.
func checkPointAttributes(buf []byte) error {
	const (
		seekTrack = iota
		seekSegment
		inSegment
	)

	dec := xml.NewDecoder(bytes.NewReader(buf))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	stage := seekTrack
	depth := 0
	index := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedInput, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++

			switch {
			case stage == seekTrack && depth == 2 && t.Name.Local == "trk":
				stage = seekSegment
			case stage == seekSegment && depth == 3 && t.Name.Local == "trkseg":
				stage = inSegment
			case stage == inSegment && depth == 4 && t.Name.Local == "trkpt":
				for _, name := range []string{"lat", "lon"} {
					if !hasAttr(t, name) {
						return fmt.Errorf("%w: point %d has no %s attribute", ErrMalformedInput, index, name)
					}
				}
				index++
			}

		case xml.EndElement:
			if (stage == inSegment && depth == 3) || (stage == seekSegment && depth == 2) {
				return nil
			}
			depth--
		}
	}
}

func hasAttr(el xml.StartElement, name string) bool {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return true
		}
	}
	return false
}
