package geometry

import (
	"cmp"
	"slices"
)

// Intersection records where along a ray an object was met
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a list of intersections ordered by ascending t
type Intersections []Intersection

// NewIntersections sorts the given intersections by t without modifying the input.
// Equal values of t keep their original order. t must not be NaN.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return sorted
}

// Hit returns the nearest intersection in front of the ray origin (t >= 0).
// The receiver must already be sorted, as NewIntersections and Shape.Intersect guarantee.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Len returns the number of intersections
func (xs Intersections) Len() int {
	return len(xs)
}
