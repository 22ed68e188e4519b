package tracer

import (
	"github.com/taigrr/orb/pkg/geometry"
	"github.com/taigrr/orb/pkg/math3d"
)

// easeFactor is the share of the remaining distance covered per step.
const easeFactor float32 = 0.1

// Camera eases its position toward a target. It always looks at the
// world origin; the target only drives motion.
type Camera struct {
	Position  math3d.Vec3
	Target    math3d.Vec3
	Threshold float32 // snap distance
}

// Moving reports whether the camera has not reached its target.
func (c *Camera) Moving() bool {
	return c.Position.Sub(c.Target).Len() != 0
}

// Ease moves the camera a tenth of the way to its target, or onto the
// target once it is closer than the threshold.
func (c *Camera) Ease() {
	diff := c.Position.Sub(c.Target)
	if diff.Len() < c.Threshold {
		c.Position = c.Target
		return
	}
	c.Position = c.Position.Sub(diff.Scale(easeFactor))
}

// viewport maps pixel coordinates to view directions for one camera
// position. It is rebuilt whenever rays are cast; nothing is cached.
type viewport struct {
	eye    math3d.Vec3
	corner math3d.Vec3 // view-plane offset of pixel (0, 0)
	shiftX math3d.Vec3 // offset between horizontally adjacent pixels
	shiftY math3d.Vec3 // offset between vertically adjacent pixels
}

// newViewport builds the camera basis for eye looking at the origin with
// a 90 degree horizontal field of view. Image rows grow downward, so the
// world up used for the basis is -Y.
//
// An eye at the origin or on the Y axis has no basis; the resulting rays
// carry NaN directions and render as background.
func newViewport(eye math3d.Vec3, width, height int) viewport {
	lookAt := math3d.Zero3()
	up := math3d.V3(0, -1, 0)

	t := lookAt.Sub(eye).Normalize()
	b := up.Cross(t).Normalize()
	v := t.Cross(b)

	// Focal distance; equal to the half-width so the horizontal FOV is 90°.
	d := geometry.Epsilon
	w := float32(width)
	h := float32(height)
	gx := d
	gy := (gx * h) / w

	return viewport{
		eye:    eye,
		corner: t.Scale(d).Sub(b.Scale(gx)).Sub(v.Scale(gy)),
		shiftX: b.Scale((2 * gx) / spanOf(w)),
		shiftY: v.Scale((2 * gy) / spanOf(h)),
	}
}

// spanOf returns the number of pixel steps across an image side. A single
// pixel row or column has no span; treat it as one so shifts stay finite.
func spanOf(n float32) float32 {
	if n <= 1 {
		return 1
	}
	return n - 1
}

// ray returns the primary ray through pixel (x, y) offset by the jitter
// (dx, dy).
func (vp viewport) ray(x, y int, dx, dy float32) math3d.Ray {
	view := vp.corner.
		Add(vp.shiftX.Scale(float32(x) + dx)).
		Add(vp.shiftY.Scale(float32(y) + dy))
	return math3d.Ray{Origin: vp.eye, Dir: view.Normalize()}
}
