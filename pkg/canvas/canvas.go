package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Canvas is a fixed-size grid of colors addressed by (x, y).
// Row y = 0 is the top of the image and is encoded first.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a black canvas of the given size
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (c *Canvas) Width() int { return c.width }

// Height returns the number of rows
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) addresses a pixel of the canvas
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Get returns the color stored at (x, y), or black outside the canvas
func (c *Canvas) Get(x, y int) core.Color {
	if !c.InBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// Set stores a color at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) Set(x, y int, pixel core.Color) {
	if !c.InBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = pixel
}

// Encode returns the canvas as a plain PPM (P3) document
func (c *Canvas) Encode() string {
	var sb strings.Builder
	sb.Grow(len(c.pixels)*12 + 32)
	c.WriteTo(&sb)
	return sb.String()
}

// WriteTo streams the PPM (P3) encoding of the canvas to w
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	n, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, pixel := range c.pixels {
		n, err := bw.WriteString(pixel.Encode() + "\n")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// WriteFile writes the PPM encoding of the canvas to path
func (c *Canvas) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := c.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// ToImage converts the canvas to an RGBA image using the same clamping as Encode
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.Get(x, y).Bytes()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// EncodePNG writes the canvas to w as a PNG image
func (c *Canvas) EncodePNG(w io.Writer) error {
	dc := gg.NewContextForRGBA(c.ToImage())
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path as a PNG image
func (c *Canvas) SavePNG(path string) error {
	if err := gg.SavePNG(path, c.ToImage()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
