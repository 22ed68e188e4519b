package tracer

import (
	"fmt"

	"github.com/taigrr/orb/pkg/math3d"
	"github.com/taigrr/orb/pkg/scene"
)

// Settle thresholds: the camera snaps to its target once the remaining
// distance drops below the threshold.
const (
	SettleCoarse float32 = 0.1
	SettleFine   float32 = 0.01
)

// DefaultMaxPasses caps the number of progressive passes seeded while
// the camera is still.
const DefaultMaxPasses = 32

// Discipline selects which end of the work queue rays are taken from.
// Reflected rays are always appended at the tail.
type Discipline int

const (
	// FIFO takes the oldest ray first, so every pixel receives its
	// primary sample before any reflection is resolved.
	FIFO Discipline = iota
	// LIFO takes the newest ray first, resolving each reflection chain
	// before moving on.
	LIFO
)

// String returns the flag spelling of the discipline.
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("Discipline(%d)", int(d))
	}
}

// Config contains the engine settings. Start from DefaultConfig; zero
// values of RayBudget, SettleThreshold and MaxPasses select the defaults.
type Config struct {
	Camera          math3d.Vec3   // initial camera position
	Target          math3d.Vec3   // initial easing target
	SettleThreshold float32       // snap distance, SettleCoarse or SettleFine
	RayBudget       int           // rays traced per Step (0 = 2 × width × height)
	MaxPasses       int           // progressive pass cap
	Discipline      Discipline    // work queue order
	Checker         scene.Checker // floor pattern
}

// DefaultConfig returns the settings of the intro animation: the camera
// starts far out and eases in to (3, 3, 3).
func DefaultConfig() Config {
	return Config{
		Camera:          math3d.V3(-10, 5, -30),
		Target:          math3d.V3(3, 3, 3),
		SettleThreshold: SettleCoarse,
		RayBudget:       0,
		MaxPasses:       DefaultMaxPasses,
		Discipline:      FIFO,
		Checker:         scene.CheckerFractional,
	}
}

func (c Config) withDefaults(width, height int) Config {
	if c.RayBudget <= 0 {
		c.RayBudget = 2 * width * height
	}
	if c.SettleThreshold <= 0 {
		c.SettleThreshold = SettleCoarse
	}
	if c.MaxPasses <= 0 {
		c.MaxPasses = DefaultMaxPasses
	}
	if c.MaxPasses > 255 {
		c.MaxPasses = 255
	}
	return c
}
