package tracer

import (
	"github.com/taigrr/orb/pkg/geometry"
	"github.com/taigrr/orb/pkg/math3d"
	"github.com/taigrr/orb/pkg/scene"
)

// Bounce divisors: the share of a ray's weight that survives a reflection.
const (
	orbBounce   = 2
	floorBounce = 8
)

// sample is the result of tracing one ray.
type sample struct {
	color uint8 // grey level composited into the pixel
	alpha uint8 // opacity of the composite

	bounce       math3d.Ray // reflected ray, valid when bounceWeight > 0
	bounceWeight uint8
}

// shade traces r with the given weight against the scene. The weight
// is split between the surface color and the reflected ray.
//
// The orb and the light are ordered against each other only; the floor
// is consulted when neither sphere is hit first.
func shade(sc scene.Scene, r math3d.Ray, weight uint8) sample {
	orbHit := sc.Orb.Intersect(r)
	lightHit := sc.Light.Intersect(r)

	switch {
	case orbHit.Before(lightHit):
		bw := weight / orbBounce
		s := sample{color: scene.ColorOrb, alpha: weight - bw, bounceWeight: bw}
		if bw != 0 {
			s.bounce = geometry.Reflect(sc.Orb, r, orbHit.T)
		}
		return s

	case lightHit.Before(orbHit):
		return sample{color: scene.ColorLight, alpha: weight}
	}

	floorHit := sc.Floor.Intersect(r)
	if !floorHit.OK {
		return sample{color: scene.ColorBackground, alpha: weight}
	}

	p := r.PointAt(floorHit.T)
	bw := weight / floorBounce
	s := sample{
		color:        sc.Checker.TileColor(p.X, p.Z),
		alpha:        weight - bw,
		bounceWeight: bw,
	}
	if bw != 0 {
		s.bounce = geometry.Reflect(sc.Floor, r, floorHit.T)
	}
	return s
}

// lerp blends col over val with opacity alpha, truncating toward zero.
func lerp(val, alpha, col uint8) uint8 {
	v := uint32(val)
	a := uint32(alpha)
	c := uint32(col)
	return uint8((v*(255-a) + c*a) / 255)
}

// composite blends a grey level into the RGB channels of the pixel at
// offset px and marks it opaque.
func composite(pixels []byte, px int, alpha, col uint8) {
	pixels[px+0] = lerp(pixels[px+0], alpha, col)
	pixels[px+1] = lerp(pixels[px+1], alpha, col)
	pixels[px+2] = lerp(pixels[px+2], alpha, col)
	pixels[px+3] = 0xFF
}
