package geometry

import (
	"testing"
)

func TestNewIntersections_Sorts(t *testing.T) {
	s := DefaultSphere()
	i1 := NewIntersection(5, s)
	i2 := NewIntersection(7, s)
	i3 := NewIntersection(-3, s)
	i4 := NewIntersection(2, s)

	input := []Intersection{i1, i2, i3, i4}
	xs := NewIntersections(input...)

	expected := []float64{-3, 2, 5, 7}
	for i, tv := range expected {
		if xs[i].T != tv {
			t.Errorf("Position %d: expected t=%f, got t=%f", i, tv, xs[i].T)
		}
	}

	// Input is left untouched
	if input[0] != i1 || input[2] != i3 {
		t.Error("NewIntersections modified its input")
	}
}

func TestIntersections_Hit(t *testing.T) {
	s := DefaultSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectHit bool
		expectedT float64
	}{
		{"all positive", []float64{1, 2}, true, 1},
		{"all positive reversed", []float64{2, 1}, true, 1},
		{"some negative", []float64{-1, 1}, true, 1},
		{"all negative", []float64{-2, -1}, false, 0},
		{"lowest non-negative", []float64{5, 7, -3, 2}, true, 2},
		{"zero counts as visible", []float64{0, -1}, true, 0},
		{"empty", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input []Intersection
			for _, tv := range tt.ts {
				input = append(input, NewIntersection(tv, s))
			}

			hit, ok := NewIntersections(input...).Hit()
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, ok)
			}
			if ok && hit != NewIntersection(tt.expectedT, s) {
				t.Errorf("Expected hit at t=%f, got %+v", tt.expectedT, hit)
			}
		})
	}
}

func TestNewIntersections_OrderIndependent(t *testing.T) {
	s := DefaultSphere()
	a := NewIntersection(2, s)
	b := NewIntersection(1, s)

	hit1, ok1 := NewIntersections(a, b).Hit()
	hit2, ok2 := NewIntersections(b, a).Hit()
	if !ok1 || !ok2 {
		t.Fatal("Expected hits for both orderings")
	}
	if hit1 != hit2 || hit1 != b {
		t.Errorf("Expected both orderings to hit %+v, got %+v and %+v", b, hit1, hit2)
	}
}

func TestNewIntersections_StableTies(t *testing.T) {
	first := DefaultSphere()
	second := DefaultSphere()
	second.Radius = 2

	xs := NewIntersections(NewIntersection(1, first), NewIntersection(1, second))
	if xs[0].Object != Shape(first) || xs[1].Object != Shape(second) {
		t.Error("Expected ties to keep their input order")
	}
}
