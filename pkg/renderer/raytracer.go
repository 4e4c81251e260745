package renderer

import (
	"context"
	"log"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetShape() geometry.Shape
	GetLight() lights.PointLight
}

// PixelOutcome describes what happened to the ray traced for a pixel
type PixelOutcome int

const (
	// PixelMissed means no intersection lay in front of the eye; the pixel keeps the background
	PixelMissed PixelOutcome = iota
	// PixelDegenerate means the hit point had no surface normal and the pixel was skipped
	PixelDegenerate
	// PixelShaded means the pixel received a Phong color
	PixelShaded
)

// PixelSample is the result of tracing one ray
type PixelSample struct {
	Color   core.Color
	Outcome PixelOutcome
	State   lights.ShadingState // Only meaningful when Outcome is PixelShaded
}

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene  Scene
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger logs through the standard log package.
func NewRaytracer(scene Scene, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = log.Default()
	}
	return &Raytracer{
		scene:  scene,
		logger: logger,
	}
}

// TraceRay intersects a ray with the scene and shades the visible hit
func (rt *Raytracer) TraceRay(ray core.Ray) PixelSample {
	shape := rt.scene.GetShape()

	hit, ok := shape.Intersect(ray).Hit()
	if !ok {
		return PixelSample{Outcome: PixelMissed}
	}

	point := ray.Position(hit.T)
	normal, ok := hit.Object.NormalAt(point)
	if !ok {
		return PixelSample{Outcome: PixelDegenerate}
	}

	eye := ray.Direction.Mul(-1)
	color, state := lights.Shade(hit.Object.GetMaterial(), rt.scene.GetLight(), point, eye, normal)
	return PixelSample{Color: color, Outcome: PixelShaded, State: state}
}

// TracePixel traces the camera ray through pixel (x, y)
func (rt *Raytracer) TracePixel(x, y int) PixelSample {
	return rt.TraceRay(rt.scene.GetCamera().GetRay(x, y))
}

// Render traces every pixel of the camera's canvas, top row first.
// Pixels without a shaded hit stay black. The context is checked between rows.
func (rt *Raytracer) Render(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	config := rt.scene.GetCamera().Config()
	img := canvas.New(config.Width, config.Height)
	stats := RenderStats{}
	startTime := time.Now()

	for y := 0; y < config.Height; y++ {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(startTime)
			return nil, stats, err
		}
		for x := 0; x < config.Width; x++ {
			sample := rt.TracePixel(x, y)
			stats.AddSample(sample)
			if sample.Outcome == PixelShaded {
				img.Set(x, y, sample.Color)
			}
		}
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Rendered %dx%d in %v: %d shaded, %d missed, %d degenerate\n",
		config.Width, config.Height, stats.Elapsed,
		stats.ShadedPixels(), stats.MissedPixels, stats.DegeneratePixels)

	return img, stats, nil
}
