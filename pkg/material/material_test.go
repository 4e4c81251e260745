package material

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	expected := Material{
		Color:     core.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
	if m != expected {
		t.Errorf("Expected default material %+v, got %+v", expected, m)
	}
}

func TestNewMaterial_ValueSemantics(t *testing.T) {
	original := NewMaterial(core.Red, 0.2, 0.7, 0.3, 50)
	copied := original
	copied.Ambient = 0.9

	if original.Ambient != 0.2 {
		t.Errorf("Modifying a copy changed the original: ambient=%v", original.Ambient)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name        string
		material    Material
		expectError bool
	}{
		{"default", DefaultMaterial(), false},
		{"zero shininess", NewMaterial(core.White, 0.1, 0.9, 0.9, 0), true},
		{"negative shininess", NewMaterial(core.White, 0.1, 0.9, 0.9, -5), true},
		{"NaN diffuse", NewMaterial(core.White, 0.1, math.NaN(), 0.9, 200), true},
		{"infinite specular", NewMaterial(core.White, 0.1, 0.9, math.Inf(1), 200), true},
		{"coefficients above one allowed", NewMaterial(core.White, 1.5, 2, 3, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.expectError && err == nil {
				t.Errorf("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
