package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// CameraConfig describes a pinhole looking at a square wall along +z
type CameraConfig struct {
	RayOrigin core.Point // Eye position every ray starts from
	WallZ     float64    // z coordinate of the wall the canvas is projected onto
	WallSize  float64    // World-space width of the wall covered by the canvas
	Width     int        // Canvas width in pixels
	Height    int        // Canvas height in pixels
}

// DefaultCameraConfig returns an eye at (0,0,-5) looking at a 10 unit wall at z = 10
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		RayOrigin: core.NewPoint(0, 0, -5),
		WallZ:     10,
		WallSize:  10,
		Width:     500,
		Height:    500,
	}
}

// Camera generates rays for rendering
type Camera struct {
	config     CameraConfig
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera from its configuration.
// Pixels are square; the wall height follows from the aspect ratio of the canvas.
func NewCamera(config CameraConfig) *Camera {
	pixelSize := 0.0
	if config.Width > 0 {
		pixelSize = config.WallSize / float64(config.Width)
	}
	return &Camera{
		config:     config,
		pixelSize:  pixelSize,
		halfWidth:  config.WallSize / 2,
		halfHeight: pixelSize * float64(config.Height) / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// WallPoint maps pixel (x, y) to the world point at the pixel's center on the wall.
// Row 0 is the top of the wall (highest y).
func (c *Camera) WallPoint(x, y int) core.Point {
	worldX := -c.halfWidth + c.pixelSize*(float64(x)+0.5)
	worldY := c.halfHeight - c.pixelSize*(float64(y)+0.5)
	return core.NewPoint(worldX, worldY, c.config.WallZ)
}

// GetRay returns the normalized ray from the eye through pixel (x, y)
func (c *Camera) GetRay(x, y int) core.Ray {
	target := c.WallPoint(x, y)
	direction := core.Normalize(target.Sub(c.config.RayOrigin))
	return core.NewRay(c.config.RayOrigin, direction)
}
