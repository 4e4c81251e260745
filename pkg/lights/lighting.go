package lights

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ShadingState records which Phong terms contributed to a shaded color
type ShadingState int

const (
	// AmbientOnly means the light is behind the surface
	AmbientOnly ShadingState = iota
	// AmbientDiffuse means the reflected light points away from the eye
	AmbientDiffuse
	// FullPhong means ambient, diffuse and specular terms all contributed
	FullPhong
)

// String implements fmt.Stringer
func (s ShadingState) String() string {
	switch s {
	case AmbientOnly:
		return "ambient-only"
	case AmbientDiffuse:
		return "ambient+diffuse"
	case FullPhong:
		return "full-phong"
	default:
		return "unknown"
	}
}

// Lighting shades a surface point with the Phong model.
// eye and normal must be unit vectors. The result is not clamped.
func Lighting(m material.Material, light PointLight, point core.Point, eye, normal core.Vector) core.Color {
	color, _ := Shade(m, light, point, eye, normal)
	return color
}

// Shade is Lighting that also reports which terms were applied
func Shade(m material.Material, light PointLight, point core.Point, eye, normal core.Vector) (core.Color, ShadingState) {
	effectiveColor := light.Color.MultiplyColor(m.Color)
	ambient := effectiveColor.Multiply(m.Ambient)

	lightVector := core.Normalize(light.Position.Sub(point))
	lightDotNormal := lightVector.Dot(normal)
	if lightDotNormal < 0 {
		return ambient, AmbientOnly
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	reflectVector := core.Reflect(lightVector.Mul(-1), normal)
	reflectDotEye := reflectVector.Dot(eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse), AmbientDiffuse
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Color.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular), FullPhong
}
