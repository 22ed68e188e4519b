// Package rng provides the deterministic pseudo-random sequence used to
// jitter sample positions.
//
// The generator follows the xoshiro256** step and always starts from the
// same seed, so two sequences created with New produce identical output.
package rng

import "math/bits"

// Seed is the fixed initial state of every Sequence.
var Seed = [4]uint64{31415, 27182, 141142, 17320}

// Sequence is a xoshiro256** generator. The zero value is not seeded;
// use New.
type Sequence struct {
	state [4]uint64
}

// New returns a sequence positioned at the start of the fixed seed.
func New() *Sequence {
	return &Sequence{state: Seed}
}

// Next advances the state by one step and returns the output derived
// from the state before the update.
func (s *Sequence) Next() uint64 {
	result := bits.RotateLeft64(s.state[1]*5, 7) * 9
	t := s.state[1] << 17

	s.state[2] ^= s.state[0]
	s.state[3] ^= s.state[1]
	s.state[1] ^= s.state[2]
	s.state[0] ^= s.state[3]

	s.state[2] ^= t
	s.state[3] = bits.RotateLeft64(s.state[3], 45)

	return result
}

// Unit returns the low 16 bits of the next output mapped onto [0, 1].
func (s *Sequence) Unit() float32 {
	return float32(s.Next()&0xFFFF) / float32(0xFFFF)
}

// Jitter draws two outputs and returns a sub-pixel offset pair in
// [-0.5, 0.5], x first.
func (s *Sequence) Jitter() (dx, dy float32) {
	dx = s.Unit() - 0.5
	dy = s.Unit() - 0.5
	return dx, dy
}
