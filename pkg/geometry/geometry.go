// Package geometry provides the primitives a ray can hit and their
// intersection queries.
package geometry

import "github.com/taigrr/orb/pkg/math3d"

// Epsilon is the minimum hit distance accepted along a ray. Hits closer
// than this are treated as the surface the ray started on.
const Epsilon float32 = 0.001

// Hit is the outcome of an intersection query.
type Hit struct {
	T  float32 // distance along the ray
	OK bool    // false when nothing was hit
}

// Miss is the Hit returned when a ray hits nothing.
var Miss = Hit{}

// HitAt returns a present hit at distance t.
func HitAt(t float32) Hit {
	return Hit{T: t, OK: true}
}

// Before reports whether h is hit strictly before other. A present hit
// precedes a missing one; a missing hit never precedes anything.
func (h Hit) Before(other Hit) bool {
	if !h.OK {
		return false
	}
	if !other.OK {
		return true
	}
	return h.T < other.T
}

// Shape is a surface that can be intersected and reflected from.
type Shape interface {
	Intersect(r math3d.Ray) Hit
	NormalAt(p math3d.Vec3) math3d.Vec3
}

// Reflect returns the ray leaving s after r hits it at distance t.
func Reflect(s Shape, r math3d.Ray, t float32) math3d.Ray {
	p := r.PointAt(t)
	return math3d.Ray{
		Origin: p,
		Dir:    r.Dir.Reflect(s.NormalAt(p)).Normalize(),
	}
}
