package core

import "math"

// Linear congruential recurrence parameters. These are fixed: changing them
// changes every generated cave and pickup layout for a given seed.
const (
	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345
)

// Stream is a seeded pseudo-random number stream backed by a 32-bit linear
// congruential generator. Two streams constructed with the same seed produce
// bit-identical sequences, which makes cave generation and pickup placement
// fully reproducible for testing and replays.
type Stream struct {
	state uint32
}

// NewStream creates a new stream with the given seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// NextUnit advances the stream and returns the next value in [0, 1).
func (s *Stream) NextUnit() float64 {
	s.state = s.state*lcgMultiplier + lcgIncrement
	return float64(s.state) / float64(math.MaxUint32)
}

// Range returns a random value in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.NextUnit()*(hi-lo)
}

// Chance returns true with the given probability in [0, 1].
func (s *Stream) Chance(p float64) bool {
	return s.NextUnit() < p
}
