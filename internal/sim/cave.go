// Package sim contains the Fuel Drift simulation core: procedural cave
// generation, pickups, the tractor beam, fuel, player physics and the
// per-frame world orchestration. The package is deterministic given a seed
// and a sequence of inputs, has no goroutines and never reads the clock.
package sim

import (
	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// Segment is a fixed-width vertical slice of the tunnel with its own
// ceiling and floor heights. Floor is always below (greater than) the
// ceiling by at least the configured minimum gap.
type Segment struct {
	Ceiling float64
	Floor   float64
	XStart  float64
	Width   float64
}

// XEnd returns the end x-coordinate of this segment.
func (s Segment) XEnd() float64 {
	return s.XStart + s.Width
}

// GapHeight returns the vertical distance between floor and ceiling.
func (s Segment) GapHeight() float64 {
	return s.Floor - s.Ceiling
}

// Cave is the procedural generator maintaining an endless tunnel as a
// contiguous run of segments. Memory stays bounded: once the retained
// count exceeds the configured cap, the oldest segments are evicted from
// the front. The cave owns its pickup manager so pickup spawning stays in
// lockstep with segment generation.
type Cave struct {
	segments    []Segment
	rng         *core.Stream
	nextX       float64
	baseCeiling float64
	baseFloor   float64
	cfg         config.CaveConfig
	pickups     *PickupManager
}

// NewCave creates a cave seeded for deterministic generation, configured
// for level 1, with exactly one initial segment at x=0. The pickup manager
// gets a seed offset so cave-shape randomness and pickup placement stay
// decorrelated.
func NewCave(seed uint32, caveCfg config.CaveConfig, pickupCfg config.PickupConfig) *Cave {
	c := &Cave{
		rng:     core.NewStream(seed),
		cfg:     caveCfg,
		pickups: NewPickupManager(seed, pickupCfg),
	}
	c.setLevelGap(1)
	c.emitInitialSegment()
	return c
}

// setLevelGap computes the base ceiling/floor for a level. The gap shrinks
// by a fixed step per level until it clamps at the configured minimum, and
// the tunnel is recentered around the midline.
func (c *Cave) setLevelGap(level int) {
	gap := c.cfg.BaseGap - c.cfg.GapStep*float64(level-1)
	if gap < c.cfg.MinGap {
		gap = c.cfg.MinGap
	}
	c.baseCeiling = c.cfg.Midline - gap/2
	c.baseFloor = c.cfg.Midline + gap/2
}

// emitInitialSegment appends one segment at the base heights starting at
// x=0 and positions the generation cursor after it.
func (c *Cave) emitInitialSegment() {
	seg := Segment{
		Ceiling: c.baseCeiling,
		Floor:   c.baseFloor,
		XStart:  0,
		Width:   c.cfg.SegmentWidth,
	}
	c.segments = append(c.segments, seg)
	c.nextX = seg.XEnd()
}

// ConfigureForLevel destructively resets the cave for the given level:
// all segments and pickups are discarded, the base heights are recomputed
// from the level gap formula and a single fresh segment is emitted at x=0.
// No partial state survives a level change.
func (c *Cave) ConfigureForLevel(level int) {
	c.setLevelGap(level)
	c.segments = c.segments[:0]
	c.nextX = 0
	c.pickups.ClearAll()
	c.emitInitialSegment()
}

// GenerateNext appends one segment at the generation cursor. Ceiling and
// floor are the level's base heights plus independent random perturbations;
// if the resulting gap would undercut the minimum, the segment is recentered
// around the violating pair's midpoint and forced to exactly the minimum
// gap. Pickup spawning is checked against the new segment's horizontal
// center before the segment is appended.
func (c *Cave) GenerateNext(fuelSpawnDistance float64) {
	ceiling := c.baseCeiling + c.rng.Range(-c.cfg.MaxHeightChange, c.cfg.MaxHeightChange)
	floor := c.baseFloor + c.rng.Range(-c.cfg.MaxHeightChange, c.cfg.MaxHeightChange)

	if floor-ceiling < c.cfg.MinGap {
		center := (ceiling + floor) / 2
		ceiling = center - c.cfg.MinGap/2
		floor = center + c.cfg.MinGap/2
	}

	seg := Segment{
		Ceiling: ceiling,
		Floor:   floor,
		XStart:  c.nextX,
		Width:   c.cfg.SegmentWidth,
	}

	centerX := seg.XStart + seg.Width/2
	if c.pickups.ShouldSpawn(centerX, fuelSpawnDistance) {
		c.pickups.SpawnFuel(centerX, ceiling, floor)
	}

	c.segments = append(c.segments, seg)
	c.nextX = seg.XEnd()

	for len(c.segments) > c.cfg.MaxSegments {
		c.segments = c.segments[1:]
	}
}

// EnsureGeneratedUntil extends the tunnel so the generation cursor covers
// x plus one segment width of lookahead.
func (c *Cave) EnsureGeneratedUntil(x, fuelSpawnDistance float64) {
	for c.nextX < x+c.cfg.SegmentWidth {
		c.GenerateNext(fuelSpawnDistance)
	}
}

// SegmentsInView returns copies of every retained segment intersecting
// [xMin, xMax). NOTE: this call mutates the cave — it lazily generates
// segments to cover the view range before filtering. Callers must treat it
// as stateful even though it reads like a query.
func (c *Cave) SegmentsInView(xMin, xMax, fuelSpawnDistance float64) []Segment {
	c.EnsureGeneratedUntil(xMax, fuelSpawnDistance)

	view := make([]Segment, 0, int((xMax-xMin)/c.cfg.SegmentWidth)+2)
	for _, seg := range c.segments {
		if seg.XStart < xMax && seg.XEnd() > xMin {
			view = append(view, seg)
		}
	}
	return view
}

// Segments returns the retained segments, oldest first.
func (c *Cave) Segments() []Segment {
	return c.segments
}

// Pickups returns the cave's pickup manager.
func (c *Cave) Pickups() *PickupManager {
	return c.pickups
}
