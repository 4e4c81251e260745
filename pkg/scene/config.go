package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// RGB is a color written as a three element JSON array
type RGB [3]float64

// Color converts to a core.Color
func (c RGB) Color() core.Color {
	return core.NewColor(c[0], c[1], c[2])
}

// Config is the JSON form of a scene
type Config struct {
	Name   string     `json:"name,omitempty"`
	Width  int        `json:"width,omitempty"`
	Height int        `json:"height,omitempty"`
	Camera *CameraCfg `json:"camera,omitempty"`
	Sphere SphereCfg  `json:"sphere"`
	Light  LightCfg   `json:"light"`
}

// CameraCfg overrides the default eye and wall placement
type CameraCfg struct {
	RayOrigin core.Point `json:"rayOrigin"`
	WallZ     float64    `json:"wallZ"`
	WallSize  float64    `json:"wallSize"`
}

// SphereCfg places a unit sphere with scale, rotation and translation (applied in that order)
type SphereCfg struct {
	Translate core.Vector  `json:"translate"`
	Scale     float64      `json:"scale,omitempty"`     // Uniform scale, defaults to 1
	RotateDeg core.Vector  `json:"rotateDeg,omitempty"` // Rotation about x, y, z in degrees
	Material  *MaterialCfg `json:"material,omitempty"`  // Defaults to material.DefaultMaterial
}

// MaterialCfg is the JSON form of a Phong material
type MaterialCfg struct {
	Color     RGB     `json:"color"`
	Ambient   float64 `json:"ambient"`
	Diffuse   float64 `json:"diffuse"`
	Specular  float64 `json:"specular"`
	Shininess float64 `json:"shininess"`
}

// LightCfg is the JSON form of a point light
type LightCfg struct {
	Position core.Point `json:"position"`
	Color    *RGB       `json:"color,omitempty"` // Defaults to white
}

// ParseConfig decodes a scene config, rejecting unknown fields
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads a scene config from a JSON file
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene config: %w", err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Name == "" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return cfg, nil
}

// Load reads and builds a scene from a JSON file
func Load(path string) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	s, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Build validates the config and assembles the scene
func (cfg *Config) Build() (*Scene, error) {
	cameraConfig := renderer.DefaultCameraConfig()
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("canvas size must not be negative, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width > 0 {
		cameraConfig.Width = cfg.Width
	}
	if cfg.Height > 0 {
		cameraConfig.Height = cfg.Height
	}
	if cfg.Camera != nil {
		if cfg.Camera.WallSize <= 0 {
			return nil, fmt.Errorf("camera wallSize must be positive, got %v", cfg.Camera.WallSize)
		}
		cameraConfig.RayOrigin = cfg.Camera.RayOrigin
		cameraConfig.WallZ = cfg.Camera.WallZ
		cameraConfig.WallSize = cfg.Camera.WallSize
	}

	sphere, err := cfg.Sphere.build()
	if err != nil {
		return nil, err
	}

	light := lights.NewPointLight(cfg.Light.Position, core.White)
	if cfg.Light.Color != nil {
		light.Color = cfg.Light.Color.Color()
	}

	name := cfg.Name
	if name == "" {
		name = "custom"
	}
	return NewScene(name, cameraConfig, sphere, light), nil
}

// Transform returns the object-to-world transform of the sphere
func (sc SphereCfg) Transform() mgl64.Mat4 {
	scale := sc.Scale
	if scale == 0 {
		scale = 1
	}
	rotation := mgl64.HomogRotate3DZ(mgl64.DegToRad(sc.RotateDeg.Z())).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(sc.RotateDeg.Y()))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(sc.RotateDeg.X())))

	return mgl64.Translate3D(sc.Translate.X(), sc.Translate.Y(), sc.Translate.Z()).
		Mul4(rotation).
		Mul4(mgl64.Scale3D(scale, scale, scale))
}

func (sc SphereCfg) build() (geometry.Sphere, error) {
	if sc.Scale < 0 {
		return geometry.Sphere{}, fmt.Errorf("sphere scale must not be negative, got %v", sc.Scale)
	}

	mat := material.DefaultMaterial()
	if sc.Material != nil {
		mat = material.NewMaterial(sc.Material.Color.Color(),
			sc.Material.Ambient, sc.Material.Diffuse, sc.Material.Specular, sc.Material.Shininess)
		if err := mat.Validate(); err != nil {
			return geometry.Sphere{}, fmt.Errorf("sphere: %w", err)
		}
	}

	return geometry.NewSphereFromTransform(sc.Transform(), mat), nil
}
