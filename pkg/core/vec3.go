package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position in world space
type Point = mgl64.Vec3

// Vector is a direction or displacement in world space
type Vector = mgl64.Vec3

// Epsilon is the tolerance used for geometric comparisons
const Epsilon = 1e-9

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{x, y, z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and is returned unchanged.
func Normalize(v Vector) Vector {
	length := v.Len()
	if length == 0 {
		return Vector{}
	}
	return v.Mul(1.0 / length)
}

// Reflect mirrors an incoming vector about a surface normal
func Reflect(incoming, normal Vector) Vector {
	return incoming.Sub(normal.Mul(2 * incoming.Dot(normal)))
}

// TransformPoint applies an affine transform to a point (w = 1)
func TransformPoint(m mgl64.Mat4, p Point) Point {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformVector applies an affine transform to a direction (w = 0), ignoring translation
func TransformVector(m mgl64.Mat4, v Vector) Vector {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}

// ApproxEqual reports whether two vectors match component-wise within tolerance
func ApproxEqual(a, b Vector, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) <= tolerance &&
		math.Abs(a.Y()-b.Y()) <= tolerance &&
		math.Abs(a.Z()-b.Z()) <= tolerance
}
