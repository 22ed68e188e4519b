// Package scene describes the fixed world the tracer renders: a mirrored
// orb, a small light sphere and a checkerboard floor.
package scene

import (
	"fmt"
	"math"

	"github.com/taigrr/orb/pkg/geometry"
	"github.com/taigrr/orb/pkg/math3d"
)

// Surface colors, as a single grey level shared by R, G and B.
const (
	ColorOrb        uint8 = 0xAA
	ColorLight      uint8 = 0xFF
	ColorBackground uint8 = 0x00
	ColorTileDark   uint8 = 0x22
)

// Scene is a snapshot of the world. It is cheap to build and is rebuilt
// on every use rather than shared.
type Scene struct {
	Orb     geometry.Sphere
	Light   geometry.Sphere
	Floor   geometry.Plane
	Checker Checker
}

// Describe returns the fixed scene using the given floor pattern.
func Describe(checker Checker) Scene {
	return Scene{
		Orb: geometry.Sphere{
			Center: math3d.V3(0, 1, 0),
			Radius: 1,
		},
		Light: geometry.Sphere{
			Center: math3d.V3(2, 2, 0),
			Radius: 0.25,
		},
		Floor: geometry.Plane{
			Point:  math3d.V3(0, 0, 0),
			Normal: math3d.V3(0, 1, 0),
		},
		Checker: checker,
	}
}

// Checker selects how floor tiles are laid out.
type Checker int

const (
	// CheckerFractional tests the fractional parts of the hit coordinates
	// against one half. Light tiles are 0xDD.
	CheckerFractional Checker = iota
	// CheckerInteger tests the parity of the floored hit coordinates.
	// Light tiles are 0xCC.
	CheckerInteger
)

// String returns the flag spelling of the pattern.
func (c Checker) String() string {
	switch c {
	case CheckerFractional:
		return "fractional"
	case CheckerInteger:
		return "integer"
	default:
		return fmt.Sprintf("Checker(%d)", int(c))
	}
}

// ParseChecker parses a pattern name as produced by String.
func ParseChecker(s string) (Checker, error) {
	switch s {
	case "fractional", "frac":
		return CheckerFractional, nil
	case "integer", "int":
		return CheckerInteger, nil
	default:
		return 0, fmt.Errorf("unknown checker pattern %q (use fractional or integer)", s)
	}
}

// TileColor returns the floor color at the horizontal position (x, z).
func (c Checker) TileColor(x, z float32) uint8 {
	switch c {
	case CheckerInteger:
		ix := int64(math.Floor(float64(x)))
		iz := int64(math.Floor(float64(z)))
		if (ix+iz)&1 == 0 {
			return 0xCC
		}
		return ColorTileDark
	default:
		dx := fract(fract(x) + 1)
		dz := fract(fract(z) + 1)
		if dx < 0.5 && dz < 0.5 || dz > 0.5 && dx > 0.5 {
			return 0xDD
		}
		return ColorTileDark
	}
}

// fract returns the fractional part of x, carrying the sign of x.
func fract(x float32) float32 {
	return x - float32(math.Trunc(float64(x)))
}
