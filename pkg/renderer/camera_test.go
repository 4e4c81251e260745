package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCamera_WallPoint(t *testing.T) {
	camera := NewCamera(CameraConfig{
		RayOrigin: core.NewPoint(0, 0, -5),
		WallZ:     10,
		WallSize:  6,
		Width:     3,
		Height:    3,
	})

	tests := []struct {
		name     string
		x, y     int
		expected core.Point
	}{
		{"center", 1, 1, core.NewPoint(0, 0, 10)},
		{"top left", 0, 0, core.NewPoint(-2, 2, 10)},
		{"bottom right", 2, 2, core.NewPoint(2, -2, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := camera.WallPoint(tt.x, tt.y)
			if !core.ApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(CameraConfig{
		RayOrigin: core.NewPoint(0, 0, -5),
		WallZ:     10,
		WallSize:  6,
		Width:     3,
		Height:    3,
	})

	ray := camera.GetRay(1, 1)
	if ray.Origin != core.NewPoint(0, 0, -5) {
		t.Errorf("Expected origin (0,0,-5), got %v", ray.Origin)
	}
	if !core.ApproxEqual(ray.Direction, core.NewVector(0, 0, 1), 1e-12) {
		t.Errorf("Expected direction (0,0,1), got %v", ray.Direction)
	}

	// Every generated ray is normalized
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			d := camera.GetRay(x, y).Direction
			if math.Abs(d.Len()-1) > 1e-12 {
				t.Errorf("Ray (%d,%d) not normalized: length %f", x, y, d.Len())
			}
		}
	}
}

func TestCamera_NonSquareCanvas(t *testing.T) {
	camera := NewCamera(CameraConfig{
		RayOrigin: core.NewPoint(0, 0, -5),
		WallZ:     10,
		WallSize:  8,
		Width:     4,
		Height:    2,
	})

	// Square pixels of size 2: rows span y in [-2, 2]
	top := camera.WallPoint(0, 0)
	if !core.ApproxEqual(top, core.NewPoint(-3, 1, 10), 1e-12) {
		t.Errorf("Expected top-left pixel center (-3,1,10), got %v", top)
	}
}

func TestDefaultCameraConfig(t *testing.T) {
	config := DefaultCameraConfig()
	if config.RayOrigin != core.NewPoint(0, 0, -5) || config.WallZ != 10 || config.WallSize != 10 {
		t.Errorf("Unexpected default camera config: %+v", config)
	}
	if config.Width <= 0 || config.Height <= 0 {
		t.Errorf("Default canvas size must be positive, got %dx%d", config.Width, config.Height)
	}
}
