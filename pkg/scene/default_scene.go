package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	description string
	create      func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		description: "Pink sphere lit from the upper left",
		create:      NewDefaultScene,
	},
	"backlit": {
		description: "Sphere with the light behind it, mostly ambient with a lit rim",
		create:      NewBacklitScene,
	},
	"transformed": {
		description: "Matte sphere placed by a translate and scale transform",
		create:      NewTransformedScene,
	},
}

// NewDefaultScene creates a unit sphere at the origin lit by a white light at (-10, 10, -10)
func NewDefaultScene() *Scene {
	mat := material.NewMaterial(core.NewColor(1, 0.2, 1), 0.1, 0.9, 0.9, 200)
	sphere := geometry.NewSphere(core.NewPoint(0, 0, 0), 1, mat)
	return NewScene("default", renderer.DefaultCameraConfig(), sphere, lights.SunAt(-10, 10, -10))
}

// NewBacklitScene places the light behind the sphere as seen from the eye
func NewBacklitScene() *Scene {
	mat := material.NewMaterial(core.NewColor(0.2, 0.6, 1), 0.1, 0.9, 0.9, 200)
	sphere := geometry.NewSphere(core.NewPoint(0, 0, 0), 1, mat)
	return NewScene("backlit", renderer.DefaultCameraConfig(), sphere, lights.SunAt(2, 3, 10))
}

// NewTransformedScene shows a larger, shifted sphere with a soft highlight
func NewTransformedScene() *Scene {
	mat := material.NewMaterial(core.NewColor(1, 0.8, 0.2), 0.15, 0.8, 0.3, 10)
	transform := mgl64.Translate3D(0.5, -0.25, 1).Mul4(mgl64.Scale3D(1.5, 1.5, 1.5))
	sphere := geometry.NewSphereFromTransform(transform, mat)
	light := lights.NewPointLight(core.NewPoint(10, 10, -10), core.NewColor(1, 0.95, 0.9))
	return NewScene("transformed", renderer.DefaultCameraConfig(), sphere, light)
}

// New creates a built-in scene by name
func New(name string) (*Scene, error) {
	builtin, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return builtin.create(), nil
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
