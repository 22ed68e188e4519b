package geometry

import "github.com/taigrr/orb/pkg/math3d"

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point  math3d.Vec3
	Normal math3d.Vec3
}

// Intersect returns the hit of r with the plane. Rays parallel to the
// plane never hit, and hits within Epsilon of the origin are rejected.
func (p Plane) Intersect(r math3d.Ray) Hit {
	cos := r.Dir.Dot(p.Normal)
	if cos == 0 {
		return Miss
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / cos
	if t > Epsilon {
		return HitAt(t)
	}
	return Miss
}

// NormalAt returns the plane normal; it is the same everywhere.
func (p Plane) NormalAt(math3d.Vec3) math3d.Vec3 {
	return p.Normal
}
