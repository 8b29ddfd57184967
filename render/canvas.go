package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is the raster a track is drawn onto.
type Canvas struct {
	img *image.NRGBA
}

func NewCanvas(width, height int, background color.Color) *Canvas {
	if background == nil {
		background = color.Black
	}
	return &Canvas{img: imaging.New(width, height, background)}
}

// Set colors a single pixel. Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.img.Set(x, y, col)
}

// FlipVertical mirrors the canvas so that row 0 becomes the last row.
func (c *Canvas) FlipVertical() {
	c.img = imaging.FlipV(c.img)
}

func (c *Canvas) Image() image.Image {
	return c.img
}

func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Save writes the canvas to path. The image format follows the file
// extension.
func (c *Canvas) Save(path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("output '%s': %w", path, err)
	}

	if err := imaging.Save(c.img, path); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

func (c *Canvas) Encode(w io.Writer, format imaging.Format) error {
	return imaging.Encode(w, c.img, format)
}

// ParseBackground parses a hex color like "#000000" or "#fff".
func ParseBackground(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("background color '%s': %w", hex, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
