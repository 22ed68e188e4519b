// Package tracer implements the progressive ray tracing engine.
//
// An Engine owns an RGBA pixel buffer and a queue of pending rays. Each
// call to Step traces a bounded number of rays and composites their
// colors into the buffer, so a full image emerges over many calls while
// the caller stays responsive. Reflections are re-queued rather than
// traced recursively.
//
// An Engine is not safe for concurrent use. The pixel buffer may be read
// between calls to Step and must not be modified.
package tracer

import (
	"fmt"

	"github.com/taigrr/orb/pkg/math3d"
	"github.com/taigrr/orb/pkg/rng"
	"github.com/taigrr/orb/pkg/scene"
)

// Engine is a progressive renderer of the fixed scene.
type Engine struct {
	width, height int
	cfg           Config

	pixels []byte
	seq    *rng.Sequence
	camera Camera
	queue  rayQueue
	passes int // progressive passes seeded since the last reset

	traced uint64 // rays traced over the engine's lifetime

	// onReset, when set, runs after a camera move clears the buffer and
	// before any ray of the new view is traced.
	onReset func()
}

// New creates an engine rendering a width × height image and seeds the
// first pass of primary rays. It panics if either dimension is not
// positive.
func New(width, height int, cfg Config) *Engine {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tracer: invalid image size %dx%d", width, height))
	}
	cfg = cfg.withDefaults(width, height)

	e := &Engine{
		width:  width,
		height: height,
		cfg:    cfg,
		pixels: make([]byte, 4*width*height),
		seq:    rng.New(),
		camera: Camera{
			Position:  cfg.Camera,
			Target:    cfg.Target,
			Threshold: cfg.SettleThreshold,
		},
		queue: rayQueue{discipline: cfg.Discipline},
	}
	e.reset()
	e.castFromCamera(0xFF)

	Logger().Info("tracer: engine created",
		"width", width,
		"height", height,
		"budget", cfg.RayBudget,
		"discipline", cfg.Discipline.String(),
		"checker", cfg.Checker.String())
	return e
}

// SetCameraTarget sets the position the camera eases toward. It takes
// effect on the next Step.
func (e *Engine) SetCameraTarget(x, y, z float32) {
	e.camera.Target = math3d.V3(x, y, z)
}

// Step advances rendering by one bounded unit of work.
//
// If the camera is away from its target it moves closer, the buffer is
// cleared and a fresh pass of primary rays is cast. Then up to the ray
// budget of queued rays are traced. When the queue runs dry while the
// camera is still, another lighter pass is cast until MaxPasses is reached.
func (e *Engine) Step() {
	if e.camera.Moving() {
		e.camera.Ease()
		e.reset()
		if e.onReset != nil {
			e.onReset()
		}
		e.castFromCamera(0xFF)
		if !e.camera.Moving() {
			Logger().Debug("tracer: camera settled", "position", e.camera.Position)
		}
	}

	sc := scene.Describe(e.cfg.Checker)

	for range e.cfg.RayBudget {
		j, ok := e.queue.pop()
		if !ok {
			break
		}
		e.trace(sc, j)
	}

	if e.queue.len() == 0 && !e.camera.Moving() && e.passes < e.cfg.MaxPasses {
		e.passes++
		weight := uint8(0xFF / e.passes)
		e.castFromCamera(weight)
		Logger().Debug("tracer: pass seeded",
			"pass", e.passes,
			"weight", weight,
			"rays", e.queue.len())
	}
}

// trace shades one job, composites its color and queues its reflection.
func (e *Engine) trace(sc scene.Scene, j job) {
	s := shade(sc, j.ray, j.weight)
	if s.bounceWeight != 0 {
		e.queue.push(job{ray: s.bounce, pixel: j.pixel, weight: s.bounceWeight})
	}
	composite(e.pixels, j.pixel, s.alpha, s.color)
	e.traced++
}

// reset clears the image, drops every pending ray and restarts the pass
// count.
func (e *Engine) reset() {
	e.queue.clear()
	clear(e.pixels)
	e.passes = 0
}

// castFromCamera queues one jittered primary ray per pixel, row by row.
func (e *Engine) castFromCamera(weight uint8) {
	vp := newViewport(e.camera.Position, e.width, e.height)
	for y := range e.height {
		for x := range e.width {
			dx, dy := e.seq.Jitter()
			e.queue.push(job{
				ray:    vp.ray(x, y, dx, dy),
				pixel:  (x + y*e.width) * 4,
				weight: weight,
			})
		}
	}
}

// Pixels returns the RGBA buffer, row-major, 4 bytes per pixel. The
// slice is owned by the engine and must not be modified.
func (e *Engine) Pixels() []byte {
	return e.pixels
}

// PendingRays returns the number of rays waiting to be traced.
func (e *Engine) PendingRays() int {
	return e.queue.len()
}

// Passes returns the number of progressive passes seeded since the
// camera last moved.
func (e *Engine) Passes() int {
	return e.passes
}

// Traced returns the number of rays traced since the engine was created.
func (e *Engine) Traced() uint64 {
	return e.traced
}

// Converged reports whether the camera is still, every pass has been
// seeded and no rays remain.
func (e *Engine) Converged() bool {
	return !e.camera.Moving() && e.passes >= e.cfg.MaxPasses && e.queue.len() == 0
}

// Camera returns the current camera position.
func (e *Engine) Camera() math3d.Vec3 {
	return e.camera.Position
}

// Target returns the position the camera is easing toward.
func (e *Engine) Target() math3d.Vec3 {
	return e.camera.Target
}

// Width returns the image width in pixels.
func (e *Engine) Width() int {
	return e.width
}

// Height returns the image height in pixels.
func (e *Engine) Height() int {
	return e.height
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
