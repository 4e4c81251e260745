package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Shape is the capability the renderer needs from a scene object:
// intersect a ray, report the outward normal at a surface point, and expose its material.
type Shape interface {
	// Intersect returns every parameter t at which the ray meets the surface,
	// including intersections behind the ray origin.
	Intersect(ray core.Ray) Intersections

	// NormalAt returns the outward unit normal at point, or false when it is undefined.
	NormalAt(point core.Point) (core.Vector, bool)

	GetMaterial() material.Material
}
