package sim

import (
	"testing"

	"github.com/RainerBlessing/fuel-drift/internal/config"
)

func testCaveConfig() config.CaveConfig {
	return config.Default().Cave
}

func testPickupConfig() config.PickupConfig {
	return config.Default().Pickups
}

func newTestCave(seed uint32) *Cave {
	return NewCave(seed, testCaveConfig(), testPickupConfig())
}

const testSpawnDistance = 300.0

func TestNewCaveInitialSegment(t *testing.T) {
	c := newTestCave(12345)

	segs := c.Segments()
	if len(segs) != 1 {
		t.Fatalf("new cave has %d segments, expected 1", len(segs))
	}

	seg := segs[0]
	if seg.XStart != 0 {
		t.Errorf("initial segment XStart = %f, expected 0", seg.XStart)
	}
	if !floatEq(seg.GapHeight(), 400) {
		t.Errorf("initial gap = %f, expected level-1 base gap 400", seg.GapHeight())
	}
	if !floatEq(seg.Ceiling, 50) || !floatEq(seg.Floor, 450) {
		t.Errorf("initial heights = (%f, %f), expected (50, 450)", seg.Ceiling, seg.Floor)
	}
}

func TestCaveSegmentsAreContiguous(t *testing.T) {
	c := newTestCave(777)

	for i := 0; i < 60; i++ {
		c.GenerateNext(testSpawnDistance)
	}

	segs := c.Segments()
	for i := 1; i < len(segs); i++ {
		if !floatEq(segs[i-1].XEnd(), segs[i].XStart) {
			t.Fatalf("gap between segments %d and %d: %f != %f",
				i-1, i, segs[i-1].XEnd(), segs[i].XStart)
		}
	}
}

func TestCaveMinGapEnforced(t *testing.T) {
	cfg := testCaveConfig()

	// Generate across several seeds and levels; no segment may ever
	// undercut the minimum gap.
	for seed := uint32(1); seed <= 5; seed++ {
		c := NewCave(seed, cfg, testPickupConfig())
		for level := 1; level <= 6; level++ {
			c.ConfigureForLevel(level)
			for i := 0; i < 200; i++ {
				c.GenerateNext(testSpawnDistance)
			}
			for i, seg := range c.Segments() {
				if seg.GapHeight() < cfg.MinGap-floatEps {
					t.Fatalf("seed %d level %d segment %d: gap %f below minimum %f",
						seed, level, i, seg.GapHeight(), cfg.MinGap)
				}
			}
		}
	}
}

func TestCaveSegmentRetention(t *testing.T) {
	cfg := testCaveConfig()
	c := newTestCave(42)

	for i := 0; i < 150; i++ {
		c.GenerateNext(testSpawnDistance)
	}

	if n := len(c.Segments()); n != cfg.MaxSegments {
		t.Errorf("retained %d segments, expected cap %d", n, cfg.MaxSegments)
	}

	// Eviction drops from the front: the newest segment survives.
	segs := c.Segments()
	last := segs[len(segs)-1]
	if !floatEq(last.XStart, 150*cfg.SegmentWidth) {
		t.Errorf("newest segment XStart = %f, expected %f", last.XStart, 150*cfg.SegmentWidth)
	}
}

func TestCaveDeterminism(t *testing.T) {
	a := newTestCave(9001)
	b := newTestCave(9001)

	for i := 0; i < 80; i++ {
		a.GenerateNext(testSpawnDistance)
		b.GenerateNext(testSpawnDistance)
	}

	sa, sb := a.Segments(), b.Segments()
	if len(sa) != len(sb) {
		t.Fatalf("segment counts differ: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("segment %d differs: %+v vs %+v", i, sa[i], sb[i])
		}
	}

	pa, pb := a.Pickups().Pickups(), b.Pickups().Pickups()
	if len(pa) != len(pb) {
		t.Fatalf("pickup counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("pickup %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestConfigureForLevel(t *testing.T) {
	tests := []struct {
		level       int
		wantGap     float64
		wantCeiling float64
		wantFloor   float64
	}{
		{1, 400, 50, 450},
		{2, 350, 75, 425},
		{3, 300, 100, 400},
		{6, 150, 175, 325},
		{9, 150, 175, 325}, // clamped at the minimum gap
	}

	c := newTestCave(1)
	for _, tc := range tests {
		c.ConfigureForLevel(tc.level)

		segs := c.Segments()
		if len(segs) != 1 {
			t.Fatalf("level %d: %d segments after reset, expected 1", tc.level, len(segs))
		}
		seg := segs[0]
		if !floatEq(seg.GapHeight(), tc.wantGap) {
			t.Errorf("level %d: gap = %f, expected %f", tc.level, seg.GapHeight(), tc.wantGap)
		}
		if !floatEq(seg.Ceiling, tc.wantCeiling) || !floatEq(seg.Floor, tc.wantFloor) {
			t.Errorf("level %d: heights = (%f, %f), expected (%f, %f)",
				tc.level, seg.Ceiling, seg.Floor, tc.wantCeiling, tc.wantFloor)
		}
	}
}

func TestConfigureForLevelDiscardsState(t *testing.T) {
	c := newTestCave(5)

	// Build up segments and pickups.
	for i := 0; i < 60; i++ {
		c.GenerateNext(testSpawnDistance)
	}
	if c.Pickups().ActiveCount() == 0 {
		t.Fatal("expected pickups to spawn during generation")
	}

	c.ConfigureForLevel(3)

	if len(c.Segments()) != 1 {
		t.Errorf("segments after level change = %d, expected 1", len(c.Segments()))
	}
	if c.Pickups().ActiveCount() != 0 {
		t.Errorf("pickups after level change = %d, expected 0", c.Pickups().ActiveCount())
	}
	if c.Segments()[0].XStart != 0 {
		t.Errorf("reset segment XStart = %f, expected 0", c.Segments()[0].XStart)
	}
}

func TestPerturbationStaysWithinBounds(t *testing.T) {
	cfg := testCaveConfig()
	c := newTestCave(31337)

	for i := 0; i < 500; i++ {
		c.GenerateNext(testSpawnDistance)
	}

	// Heights perturb around the level base, never drifting cumulatively.
	// Worst case after recentering stays within maxChange + minGap slack.
	bound := cfg.MaxHeightChange + cfg.MinGap/2
	for i, seg := range c.Segments() {
		if seg.Ceiling < 50-bound || seg.Ceiling > 50+bound {
			t.Fatalf("segment %d ceiling %f drifted outside base band", i, seg.Ceiling)
		}
		if seg.Floor < 450-bound || seg.Floor > 450+bound {
			t.Fatalf("segment %d floor %f drifted outside base band", i, seg.Floor)
		}
	}
}

func TestEnsureGeneratedUntil(t *testing.T) {
	cfg := testCaveConfig()
	c := newTestCave(2)

	c.EnsureGeneratedUntil(1000, testSpawnDistance)

	segs := c.Segments()
	last := segs[len(segs)-1]
	if last.XEnd() < 1000+cfg.SegmentWidth-floatEps {
		t.Errorf("generation cursor at %f, expected coverage past %f",
			last.XEnd(), 1000+cfg.SegmentWidth)
	}

	// Already covered: generating again is a no-op.
	n := len(segs)
	c.EnsureGeneratedUntil(500, testSpawnDistance)
	if len(c.Segments()) != n {
		t.Error("EnsureGeneratedUntil regenerated already covered range")
	}
}

func TestSegmentsInView(t *testing.T) {
	c := newTestCave(3)

	view := c.SegmentsInView(100, 400, testSpawnDistance)
	if len(view) == 0 {
		t.Fatal("expected segments in view")
	}
	for _, seg := range view {
		if seg.XEnd() <= 100 || seg.XStart >= 400 {
			t.Errorf("segment [%f, %f) outside view [100, 400)", seg.XStart, seg.XEnd())
		}
	}

	// The view range must be fully covered with no holes.
	if view[0].XStart > 100 {
		t.Errorf("first view segment starts at %f, leaving [100, ...) uncovered", view[0].XStart)
	}
	if view[len(view)-1].XEnd() < 400 {
		t.Errorf("last view segment ends at %f, leaving (..., 400) uncovered", view[len(view)-1].XEnd())
	}
}

func TestPickupsSpawnDuringGeneration(t *testing.T) {
	c := newTestCave(8)
	pickupCfg := testPickupConfig()

	c.EnsureGeneratedUntil(5000, testSpawnDistance)

	pickups := c.Pickups().Pickups()
	if len(pickups) == 0 {
		t.Fatal("expected pickups after 5000 units of tunnel")
	}

	// No pickup before the initial spawn delay.
	for _, p := range pickups {
		if p.Position.X < pickupCfg.InitialSpawnDelay {
			t.Errorf("pickup at x=%f spawned before initial delay %f",
				p.Position.X, pickupCfg.InitialSpawnDelay)
		}
	}
}
