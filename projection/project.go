package projection

import (
	"math"
	"sort"
)

// Projected is one element's screen placement.
type Projected struct {
	X     float64
	Y     float64
	Scale float64
	Depth float64 // camera-space depth, used for draw ordering
}

// Project maps a planar layout coordinate (plus hash depth) to the screen.
func (c *Camera) Project(x, y, depth float64) Projected {
	cx := c.Width / 2
	cy := c.Height / 2
	if !c.ThreeD {
		return Projected{
			X:     cx + (x-cx)*c.Zoom,
			Y:     cy + (y-cy)*c.Zoom,
			Scale: 1,
		}
	}

	// Translate to viewport center, then yaw about the vertical screen
	// axis, then pitch about the horizontal screen axis.
	tx := x - cx
	ty := y - cy
	tz := depth

	sinY, cosY := math.Sincos(c.Yaw)
	rx := tx*cosY + tz*sinY
	rz := -tx*sinY + tz*cosY

	sinP, cosP := math.Sincos(c.Pitch)
	ry := ty*cosP - rz*sinP
	rz = ty*sinP + rz*cosP

	f := c.focal()
	denom := f + rz
	if denom < 1 {
		denom = 1
	}
	scale := f / denom * c.Zoom

	return Projected{
		X:     cx + rx*scale,
		Y:     cy + ry*scale,
		Scale: scale,
		Depth: rz,
	}
}

// BackToFront returns indices 0..n-1 ordered farthest-first by the given
// camera-space depth so nearer elements are drawn last and occlude.
func BackToFront(n int, depth func(i int) float64) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return depth(order[a]) > depth(order[b])
	})
	return order
}
