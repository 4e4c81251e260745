package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
	Sphere       geometry.Sphere   // The single object in the scene
	Light        lights.PointLight // The single point light
}

// NewScene assembles a scene and builds its camera
func NewScene(name string, cameraConfig renderer.CameraConfig, sphere geometry.Sphere, light lights.PointLight) *Scene {
	return &Scene{
		Name:         name,
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Sphere:       sphere,
		Light:        light,
	}
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetShape implements renderer.Scene
func (s *Scene) GetShape() geometry.Shape {
	return s.Sphere
}

// GetLight implements renderer.Scene
func (s *Scene) GetLight() lights.PointLight {
	return s.Light
}

// WithSize returns a copy of the scene rendered at a different canvas size.
// Non-positive dimensions keep the current value.
func (s *Scene) WithSize(width, height int) *Scene {
	config := s.CameraConfig
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	return NewScene(s.Name, config, s.Sphere, s.Light)
}
