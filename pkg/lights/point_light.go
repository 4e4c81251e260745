package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an idealized point source with no attenuation
type PointLight struct {
	Position core.Point
	Color    core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

// SunAt creates a white point light at the given position
func SunAt(x, y, z float64) PointLight {
	return NewPointLight(core.NewPoint(x, y, z), core.White)
}
