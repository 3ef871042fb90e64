package projection

import (
	"math"

	"github.com/w5felix/bikeflow/geocode"
)

const (
	// Pitch stops short of a right angle so the camera never flips.
	maxPitch = 0.88 * math.Pi / 2

	// Drag deltas arrive in pixels; radians per pixel.
	rotateSpeed = 0.005

	// Node depths live in a fixed symmetric range.
	depthRange = 220.0

	// Focal length is proportional to the smaller viewport dimension.
	focalFactor = 1.2
)

// Camera holds the projection state. Rotation and zoom mutate the camera
// only; the underlying layout coordinates are never touched.
type Camera struct {
	Width  float64
	Height float64
	Yaw    float64
	Pitch  float64
	Zoom   float64
	ThreeD bool
}

// NewCamera creates a 2D camera at zoom 1.
func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height, Zoom: 1}
}

// Rotate applies an incremental drag delta to yaw and pitch.
func (c *Camera) Rotate(dx, dy float64) {
	c.Yaw += dx * rotateSpeed
	c.Pitch = clamp(c.Pitch+dy*rotateSpeed, -maxPitch, maxPitch)
}

// SetZoom clamps and stores the zoom level.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = clamp(z, 0.2, 5)
}

func (c *Camera) focal() float64 {
	return math.Min(c.Width, c.Height) * focalFactor
}

// DepthFor returns the stable per-node depth used in 3D mode. The value
// depends only on the name, so depth never changes between re-renders
// unless the node set changes.
func DepthFor(name string) float64 {
	return geocode.MapToRange(geocode.Hash64(name), -depthRange, depthRange)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
