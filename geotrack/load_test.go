package geotrack

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
)

const gpxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="trackpic" xmlns="http://www.topografix.com/GPX/1/1">
`

const threePointTrack = gpxHeader + `<trk><name>Ride</name><trkseg>
<trkpt lat="47.1" lon="8.1"><ele>410.5</ele><time>2021-06-01T10:00:00.000Z</time></trkpt>
<trkpt lat="47.3" lon="8.0"><ele>420.0</ele><time>2021-06-01T10:00:05.000Z</time></trkpt>
<trkpt lat="47.2" lon="8.4"><ele>405.0</ele><time>2021-06-01T10:00:10.000Z</time></trkpt>
</trkseg></trk></gpx>`

func writeTrack(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %s", err)
	}
	return p
}

func TestLoadTrackKeepsFileOrder(t *testing.T) {
	is := is.New(t)

	points, err := LoadTrack(writeTrack(t, "ride.gpx", threePointTrack))
	is.NoErr(err)
	is.Equal(len(points), 3)

	is.Equal(points[0].Lat, 47.1)
	is.Equal(points[0].Lon, 8.1)
	is.Equal(points[0].Elevation, 410.5)
	is.True(points[0].Time.Equal(time.Date(2021, 6, 1, 10, 0, 0, 0, time.UTC)))

	is.Equal(points[1].Lat, 47.3)
	is.Equal(points[2].Lon, 8.4)
	is.True(points[2].Time.After(points[1].Time)) // points should stay in file order
}

func TestLoadTrackIgnoresExtensionCase(t *testing.T) {
	is := is.New(t)

	points, err := LoadTrack(writeTrack(t, "RIDE.GPX", threePointTrack))
	is.NoErr(err)
	is.Equal(len(points), 3)
}

func TestLoadTrackRejectsUnknownExtension(t *testing.T) {
	is := is.New(t)

	_, err := LoadTrack(writeTrack(t, "ride.tcx", threePointTrack))
	is.True(errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadTrackReadsOnlyFirstSegment(t *testing.T) {
	is := is.New(t)

	content := gpxHeader + `<trk><trkseg>
<trkpt lat="1" lon="2"><ele>3</ele><time>2021-06-01T10:00:00.000Z</time></trkpt>
</trkseg><trkseg>
<trkpt lat="4" lon="5"><ele>6</ele><time>2021-06-01T11:00:00.000Z</time></trkpt>
</trkseg></trk></gpx>`

	points, err := LoadTrack(writeTrack(t, "two.gpx", content))
	is.NoErr(err)
	is.Equal(len(points), 1)
	is.Equal(points[0].Lat, 1.0)
}

func TestLoadTrackReadsChildrenByName(t *testing.T) {
	is := is.New(t)

	content := gpxHeader + `<trk><trkseg>
<trkpt lat="1" lon="2"><time>2021-06-01T10:00:00.000Z</time><ele>3</ele></trkpt>
</trkseg></trk></gpx>`

	points, err := LoadTrack(writeTrack(t, "swapped.gpx", content))
	is.NoErr(err)
	is.Equal(points[0].Elevation, 3.0) // elevation should not depend on child order
}

func TestLoadTrackAcceptsEmptySegment(t *testing.T) {
	is := is.New(t)

	points, err := LoadTrack(writeTrack(t, "empty.gpx", gpxHeader+`<trk><trkseg></trkseg></trk></gpx>`))
	is.NoErr(err)
	is.Equal(len(points), 0)
}

func TestLoadTrackMalformed(t *testing.T) {
	cases := map[string]string{
		"no track":   gpxHeader + `</gpx>`,
		"no segment": gpxHeader + `<trk><name>x</name></trk></gpx>`,
		"no ele":     gpxHeader + `<trk><trkseg><trkpt lat="1" lon="2"><time>2021-06-01T10:00:00.000Z</time></trkpt></trkseg></trk></gpx>`,
		"no time":    gpxHeader + `<trk><trkseg><trkpt lat="1" lon="2"><ele>3</ele></trkpt></trkseg></trk></gpx>`,
		"bad lat":    gpxHeader + `<trk><trkseg><trkpt lat="north" lon="2"><ele>3</ele><time>2021-06-01T10:00:00.000Z</time></trkpt></trkseg></trk></gpx>`,
		"no lat":     gpxHeader + `<trk><trkseg><trkpt lon="8.1"><ele>3</ele><time>2021-06-01T10:00:00.000Z</time></trkpt><trkpt lat="47.3" lon="8"><ele>4</ele><time>2021-06-01T10:00:05.000Z</time></trkpt></trkseg></trk></gpx>`,
		"no lon":     gpxHeader + `<trk><trkseg><trkpt lat="47.3" lon="8"><ele>4</ele><time>2021-06-01T10:00:00.000Z</time></trkpt><trkpt lat="47.1"><ele>3</ele><time>2021-06-01T10:00:05.000Z</time></trkpt></trkseg></trk></gpx>`,
		"nan lat":    gpxHeader + `<trk><trkseg><trkpt lat="NaN" lon="2"><ele>3</ele><time>2021-06-01T10:00:00.000Z</time></trkpt></trkseg></trk></gpx>`,
		"inf ele":    gpxHeader + `<trk><trkseg><trkpt lat="1" lon="2"><ele>Inf</ele><time>2021-06-01T10:00:00.000Z</time></trkpt></trkseg></trk></gpx>`,
		"not xml":    "this is not a track",
		"truncated":  strings.TrimSuffix(threePointTrack, "</trkseg></trk></gpx>"),
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)

			_, err := LoadTrack(writeTrack(t, "bad.gpx", content))
			is.True(errors.Is(err, ErrMalformedInput))
		})
	}
}

func TestLoadTrackEnforcesSizeLimit(t *testing.T) {
	is := is.New(t)

	_, err := loadGPXTrack(writeTrack(t, "ride.gpx", threePointTrack), 16)
	is.True(errors.Is(err, ErrMalformedInput))

	points, err := loadGPXTrack(writeTrack(t, "ride.gpx", threePointTrack), 0)
	is.NoErr(err)
	is.Equal(len(points), 3)
}

func TestLoadTrackMissingFile(t *testing.T) {
	is := is.New(t)

	_, err := LoadTrack(filepath.Join(t.TempDir(), "missing.gpx"))
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestLoadTrackChecksOnlyFirstSegmentAttributes(t *testing.T) {
	is := is.New(t)

	content := gpxHeader + `<trk><trkseg>
<trkpt lat="1" lon="2"><ele>3</ele><time>2021-06-01T10:00:00.000Z</time></trkpt>
</trkseg><trkseg>
<trkpt lon="5"><ele>6</ele><time>2021-06-01T11:00:00.000Z</time></trkpt>
</trkseg></trk></gpx>`

	points, err := LoadTrack(writeTrack(t, "two.gpx", content))
	is.NoErr(err) // later segments are not read, so their points are not checked
	is.Equal(len(points), 1)
}

func TestCheckPointAttributesReportsIndex(t *testing.T) {
	is := is.New(t)

	content := gpxHeader + `<trk><trkseg>
<trkpt lat="1" lon="2"/><trkpt lat="1" lon="2"/><trkpt lat="1"/>
</trkseg></trk></gpx>`

	err := checkPointAttributes([]byte(content))
	is.True(errors.Is(err, ErrMalformedInput))
	is.True(strings.Contains(err.Error(), "point 2 has no lon"))
}
