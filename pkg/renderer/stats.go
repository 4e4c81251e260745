package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels traced
	MissedPixels      int           // Pixels whose ray had no visible hit
	DegeneratePixels  int           // Pixels skipped because the surface normal was undefined
	AmbientOnlyPixels int           // Shaded pixels lit by the ambient term only
	DiffusePixels     int           // Shaded pixels lit by ambient and diffuse terms
	FullPhongPixels   int           // Shaded pixels with a specular contribution
	Elapsed           time.Duration // Wall-clock render time
}

// AddSample records the outcome of a single traced pixel
func (rs *RenderStats) AddSample(sample PixelSample) {
	rs.TotalPixels++
	switch sample.Outcome {
	case PixelMissed:
		rs.MissedPixels++
	case PixelDegenerate:
		rs.DegeneratePixels++
	case PixelShaded:
		switch sample.State {
		case lights.AmbientOnly:
			rs.AmbientOnlyPixels++
		case lights.AmbientDiffuse:
			rs.DiffusePixels++
		case lights.FullPhong:
			rs.FullPhongPixels++
		}
	}
}

// ShadedPixels returns the number of pixels written to the canvas
func (rs RenderStats) ShadedPixels() int {
	return rs.AmbientOnlyPixels + rs.DiffusePixels + rs.FullPhongPixels
}
