package canvas

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestNew_AllBlack(t *testing.T) {
	c := New(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Fatalf("Expected 10x20 canvas, got %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.Get(x, y); got != core.Black {
				t.Fatalf("Expected black at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestCanvas_SetGet(t *testing.T) {
	c := New(10, 20)
	c.Set(5, 10, core.Green)

	if got := c.Get(5, 10); got != core.Green {
		t.Errorf("Expected green at (5,10), got %v", got)
	}
	if got := c.Get(10, 5); got != core.Black {
		t.Errorf("Expected (10,5) to stay black, got %v", got)
	}
}

func TestCanvas_SetOutOfBounds(t *testing.T) {
	c := New(5, 3)
	before := c.Encode()

	coords := [][2]int{{5, 0}, {0, 3}, {5, 3}, {-1, 0}, {0, -1}, {100, 100}}
	for _, xy := range coords {
		c.Set(xy[0], xy[1], core.White)
	}

	if after := c.Encode(); after != before {
		t.Errorf("Out of bounds writes changed the canvas:\nbefore=%q\nafter=%q", before, after)
	}
	if got := c.Get(-1, 0); got != core.Black {
		t.Errorf("Expected black outside the canvas, got %v", got)
	}
}

func TestCanvas_EncodeHeader(t *testing.T) {
	c := New(10, 20)
	encoded := c.Encode()

	if !strings.HasPrefix(encoded, "P3\n10 20\n255\n") {
		t.Fatalf("Unexpected header: %q", encoded[:min(len(encoded), 20)])
	}
	if !strings.HasSuffix(encoded, "\n") {
		t.Error("Expected trailing newline")
	}

	body := strings.TrimPrefix(encoded, "P3\n10 20\n255\n")
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	if len(lines) != 10*20 {
		t.Errorf("Expected %d body lines, got %d", 10*20, len(lines))
	}
}

func TestCanvas_EncodePixels(t *testing.T) {
	c := New(5, 3)
	c.Set(0, 0, core.NewColor(1.5, 0, 0))
	c.Set(2, 1, core.NewColor(0, 0.5, 0))
	c.Set(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.Encode(), "\n")
	// Header takes 3 lines; pixel (x, y) lives at 3 + y*width + x
	tests := []struct {
		x, y     int
		expected string
	}{
		{0, 0, "255 0 0"},
		{2, 1, "0 128 0"},
		{4, 2, "0 0 255"},
		{1, 0, "0 0 0"},
	}
	for _, tt := range tests {
		if got := lines[3+tt.y*5+tt.x]; got != tt.expected {
			t.Errorf("Pixel (%d,%d): expected %q, got %q", tt.x, tt.y, tt.expected, got)
		}
	}
}

func TestCanvas_WriteToMatchesEncode(t *testing.T) {
	c := New(4, 2)
	c.Set(1, 1, core.Magenta)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	if buf.String() != c.Encode() {
		t.Error("WriteTo and Encode produced different output")
	}
}

func TestCanvas_WriteFile(t *testing.T) {
	c := New(3, 2)
	c.Set(2, 1, core.Cyan)
	path := filepath.Join(t.TempDir(), "out.ppm")

	if err := c.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != c.Encode() {
		t.Errorf("File contents differ from Encode:\n%q", data)
	}
}

func TestCanvas_WriteFileError(t *testing.T) {
	c := New(1, 1)
	path := filepath.Join(t.TempDir(), "missing", "out.ppm")

	if err := c.WriteFile(path); err == nil {
		t.Error("Expected error writing into a missing directory")
	}
}

func TestCanvas_PNG(t *testing.T) {
	c := New(4, 3)
	c.Set(3, 2, core.NewColor(1, 0.5, 2))

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("Expected 4x3 image, got %dx%d", b.Dx(), b.Dy())
	}

	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 255 || g>>8 != 128 || b>>8 != 255 {
		t.Errorf("Expected (255,128,255), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestCanvas_SavePNG(t *testing.T) {
	c := New(2, 2)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open saved PNG: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Errorf("Saved file is not a PNG: %v", err)
	}
}
