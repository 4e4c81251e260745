package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds the Phong shading parameters of a surface.
// Ambient, Diffuse and Specular are reflectance coefficients, conventionally in [0, 1].
// Shininess is the specular falloff exponent.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewMaterial creates a new Material
func NewMaterial(color core.Color, ambient, diffuse, specular, shininess float64) Material {
	return Material{
		Color:     color,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// DefaultMaterial returns a white material with ambient 0.1, diffuse 0.9, specular 0.9 and shininess 200
func DefaultMaterial() Material {
	return NewMaterial(core.White, 0.1, 0.9, 0.9, 200)
}

// Validate checks that the coefficients are usable for shading.
// Shading itself never calls this; it exists for loaders of user supplied scenes.
func (m Material) Validate() error {
	coefficients := []struct {
		name  string
		value float64
	}{
		{"ambient", m.Ambient},
		{"diffuse", m.Diffuse},
		{"specular", m.Specular},
		{"shininess", m.Shininess},
	}
	for _, c := range coefficients {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("material %s must be finite, got %v", c.name, c.value)
		}
	}
	if m.Shininess <= 0 {
		return fmt.Errorf("material shininess must be positive, got %v", m.Shininess)
	}
	return nil
}
