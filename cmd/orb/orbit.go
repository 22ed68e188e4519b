package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/orb/pkg/math3d"
)

// Orbit limits. Pitch stays off the poles because the tracer's camera has
// no basis when looking straight down the Y axis.
const (
	minPitch    = 0.05
	maxPitch    = 1.45
	minDistance = 2.5
	maxDistance = 40
)

// OrbitAxis is one orbit coordinate chasing its goal on a spring.
type OrbitAxis struct {
	Position float64
	Goal     float64
	velocity float64
	spring   harmonica.Spring
}

// NewOrbitAxis creates an axis resting at v.
func NewOrbitAxis(fps int, v float64) OrbitAxis {
	return OrbitAxis{
		Position: v,
		Goal:     v,
		// Frequency 6.0 = brisk, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Update advances the spring by one frame.
func (a *OrbitAxis) Update() {
	a.Position, a.velocity = a.spring.Update(a.Position, a.velocity, a.Goal)
}

// Orbit describes a camera target circling the origin in spherical
// coordinates.
type Orbit struct {
	Yaw, Pitch, Distance OrbitAxis
	fps                  int
	home                 math3d.Vec3
}

// NewOrbit creates an orbit resting at p.
func NewOrbit(fps int, p math3d.Vec3) *Orbit {
	o := &Orbit{fps: fps, home: p}
	o.place(p)
	return o
}

func (o *Orbit) place(p math3d.Vec3) {
	dist := float64(p.Len())
	pitch, yaw := minPitch, 0.0
	if dist > 0 {
		pitch = math.Asin(float64(p.Y) / dist)
		yaw = math.Atan2(float64(p.X), float64(p.Z))
	}

	o.Yaw = NewOrbitAxis(o.fps, yaw)
	o.Pitch = NewOrbitAxis(o.fps, clamp(pitch, minPitch, maxPitch))
	o.Distance = NewOrbitAxis(o.fps, clamp(dist, minDistance, maxDistance))
}

// Nudge moves the goals; the positions follow on their springs.
func (o *Orbit) Nudge(yaw, pitch, distance float64) {
	o.Yaw.Goal += yaw
	o.Pitch.Goal = clamp(o.Pitch.Goal+pitch, minPitch, maxPitch)
	o.Distance.Goal = clamp(o.Distance.Goal+distance, minDistance, maxDistance)
}

// Reset sends the goals back to the starting position.
func (o *Orbit) Reset() {
	home := NewOrbit(o.fps, o.home)
	o.Yaw.Goal = home.Yaw.Goal
	o.Pitch.Goal = home.Pitch.Goal
	o.Distance.Goal = home.Distance.Goal
}

// Update advances every axis by one frame.
func (o *Orbit) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
	o.Distance.Update()
}

// Point returns the current orbit position in world space.
func (o *Orbit) Point() math3d.Vec3 {
	d := o.Distance.Position
	p := o.Pitch.Position
	y := o.Yaw.Position
	return math3d.V3(
		float32(d*math.Cos(p)*math.Sin(y)),
		float32(d*math.Sin(p)),
		float32(d*math.Cos(p)*math.Cos(y)),
	)
}

// targetTracker forwards orbit points to the engine only when they moved
// noticeably. Every new target restarts the image, so the spring's
// sub-pixel settling must not.
type targetTracker struct {
	last      math3d.Vec3
	tolerance float32
}

// changed reports whether p differs from the last accepted point, and
// accepts it if so.
func (t *targetTracker) changed(p math3d.Vec3) bool {
	if p.Distance(t.last) < t.tolerance {
		return false
	}
	t.last = p
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
