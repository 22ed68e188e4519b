package geometry

import (
	"math"

	"github.com/taigrr/orb/pkg/math3d"
)

// Sphere is a sphere with a center and a positive radius.
type Sphere struct {
	Center math3d.Vec3
	Radius float32
}

// Intersect returns the nearest hit further than Epsilon along r.
func (s Sphere) Intersect(r math3d.Ray) Hit {
	adj := r.Origin.Sub(s.Center)
	vd := adj.Dot(r.Dir)
	viewSq := adj.Dot(adj)
	chord := float32(vd*vd) - (viewSq - float32(s.Radius*s.Radius))
	if chord < 0 {
		return Miss
	}

	root := float32(math.Sqrt(float64(chord)))
	d1 := -vd + root
	d2 := -vd - root
	switch {
	case d1 <= Epsilon && d2 <= Epsilon:
		return Miss
	case d1 <= Epsilon:
		return HitAt(d2)
	case d2 <= Epsilon:
		return HitAt(d1)
	case d1 < d2:
		return HitAt(d1)
	default:
		return HitAt(d2)
	}
}

// NormalAt returns the outward unit normal at p, which must lie on the surface.
func (s Sphere) NormalAt(p math3d.Vec3) math3d.Vec3 {
	return p.Sub(s.Center).Normalize()
}
