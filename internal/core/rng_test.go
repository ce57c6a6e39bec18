package core

import "testing"

func TestStreamDeterminism(t *testing.T) {
	seeds := []uint32{0, 1, 42, 12345, 4294967295}

	for _, seed := range seeds {
		a := NewStream(seed)
		b := NewStream(seed)

		for i := 0; i < 1000; i++ {
			va := a.NextUnit()
			vb := b.NextUnit()
			if va != vb {
				t.Fatalf("seed %d: streams diverged at draw %d: %v != %v", seed, i, va, vb)
			}
		}
	}
}

func TestStreamsWithDifferentSeedsDiverge(t *testing.T) {
	a := NewStream(1)
	b := NewStream(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.NextUnit() != b.NextUnit() {
			same = false
			break
		}
	}
	if same {
		t.Error("streams with different seeds should produce different sequences")
	}
}

func TestStreamUnitBounds(t *testing.T) {
	s := NewStream(7)
	for i := 0; i < 10000; i++ {
		v := s.NextUnit()
		if v < 0 || v > 1 {
			t.Fatalf("draw %d out of [0, 1]: %v", i, v)
		}
	}
}

func TestStreamRangeBounds(t *testing.T) {
	ranges := []struct{ lo, hi float64 }{
		{0, 1},
		{-20, 20},
		{100, 400},
		{-1000, -500},
	}

	for _, r := range ranges {
		s := NewStream(99)
		for i := 0; i < 10000; i++ {
			v := s.Range(r.lo, r.hi)
			if v < r.lo || v > r.hi {
				t.Fatalf("Range(%v, %v) draw %d out of bounds: %v", r.lo, r.hi, i, v)
			}
		}
	}
}

func TestStreamChance(t *testing.T) {
	s := NewStream(123)

	hits := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if s.Chance(0.5) {
			hits++
		}
	}

	// A fair coin over 10k draws should land well within 45-55%.
	if hits < draws*45/100 || hits > draws*55/100 {
		t.Errorf("Chance(0.5) hit %d of %d draws, expected roughly half", hits, draws)
	}
}
