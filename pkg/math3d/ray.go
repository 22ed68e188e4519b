package math3d

// Ray is a half-line with an origin and a unit direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3 // expected to be normalized by every producer
}

// NewRay creates a ray from origin towards dir. The direction is normalized.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
