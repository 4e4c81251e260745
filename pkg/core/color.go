package core

import (
	"fmt"
	"math"
	"strconv"
)

// Color is an RGB triple of channel intensities.
// Channels are unbounded during shading and only clamped when encoded.
type Color struct {
	R, G, B float64
}

// Named colors
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
	Yellow  = Color{1, 1, 0}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Negate returns the color with every channel negated
func (c Color) Negate() Color {
	return Color{-c.R, -c.G, -c.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide returns the color divided by a scalar
func (c Color) Divide(scalar float64) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

// MultiplyColor returns the Hadamard (channel-wise) product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Bytes returns the clamped 0-255 value of each channel
func (c Color) Bytes() (r, g, b uint8) {
	return encodeChannel(c.R), encodeChannel(c.G), encodeChannel(c.B)
}

// Encode formats the color as "R G B" with each channel in [0, 255]
func (c Color) Encode() string {
	r, g, b := c.Bytes()
	buf := make([]byte, 0, 11)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return string(buf)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return fmt.Sprintf("Color(%g, %g, %g)", c.R, c.G, c.B)
}

// clamp limits v to [0, 1]. NaN clamps to 0.
func clamp(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func encodeChannel(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}
