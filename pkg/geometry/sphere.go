package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Origin   core.Point
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(origin core.Point, radius float64, mat material.Material) Sphere {
	return Sphere{
		Origin:   origin,
		Radius:   radius,
		Material: mat,
	}
}

// DefaultSphere returns a unit sphere at the world origin with the default material
func DefaultSphere() Sphere {
	return NewSphere(core.NewPoint(0, 0, 0), 1, material.DefaultMaterial())
}

// NewSphereFromTransform places a unit sphere in the world with an affine transform.
// Only rotation, translation and uniform scale keep the result a sphere; the radius
// is taken from the transformed x axis.
func NewSphereFromTransform(transform mgl64.Mat4, mat material.Material) Sphere {
	origin := core.TransformPoint(transform, core.NewPoint(0, 0, 0))
	radius := core.TransformVector(transform, core.NewVector(1, 0, 0)).Len()
	return NewSphere(origin, radius, mat)
}

// Intersect solves the ray-sphere quadratic and returns both roots, nearest first.
// Roots are returned even when negative or equal; choosing the visible one is left to Hit.
func (s Sphere) Intersect(ray core.Ray) Intersections {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Sub(s.Origin)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// A zero-length direction describes no ray at all
	if a == 0 {
		return nil
	}

	discriminant := b*b - a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return Intersections{
		NewIntersection((-b-sqrtD)/a, s),
		NewIntersection((-b+sqrtD)/a, s),
	}
}

// NormalAt returns the outward unit normal at point.
// The normal is undefined at the center of the sphere, reported by ok == false.
func (s Sphere) NormalAt(point core.Point) (normal core.Vector, ok bool) {
	outward := point.Sub(s.Origin)
	if outward.Len() == 0 {
		return core.Vector{}, false
	}
	return core.Normalize(outward), true
}

// GetMaterial returns the sphere's material
func (s Sphere) GetMaterial() material.Material {
	return s.Material
}
