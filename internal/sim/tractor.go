package sim

import (
	"math"

	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// BeamDir is the direction of the tractor beam.
type BeamDir int

const (
	BeamUp BeamDir = iota
	BeamDown
)

// String returns a human-readable name for the direction.
func (d BeamDir) String() string {
	switch d {
	case BeamUp:
		return "Up"
	case BeamDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Beam is the tractor beam state machine: inactive, or active with a fixed
// direction and a countdown timer. The beam cannot be redirected or
// refreshed while active, and deactivates itself when the timer runs out.
type Beam struct {
	active bool
	dir    BeamDir
	timer  float64
	cfg    config.BeamConfig
}

// NewBeam creates an inactive tractor beam.
func NewBeam(cfg config.BeamConfig) Beam {
	return Beam{cfg: cfg}
}

// Activate turns the beam on with the given direction for the configured
// maximum duration. A no-op while the beam is already active: the existing
// direction and timer are preserved.
func (b *Beam) Activate(dir BeamDir) {
	if b.active {
		return
	}
	b.active = true
	b.dir = dir
	b.timer = b.cfg.MaxDuration
}

// Tick advances the countdown and deactivates the beam once the timer
// reaches zero. A no-op on an inactive beam.
func (b *Beam) Tick(dt float64) {
	if !b.active {
		return
	}
	b.timer -= dt
	if b.timer <= 0 {
		b.active = false
		b.timer = 0
	}
}

// IsActive returns true while the beam is on.
func (b *Beam) IsActive() bool {
	return b.active
}

// Dir returns the beam's direction. Only meaningful while active.
func (b *Beam) Dir() BeamDir {
	return b.dir
}

// RemainingTime returns the seconds left on an active beam, 0 otherwise.
func (b *Beam) RemainingTime() float64 {
	if !b.active {
		return 0
	}
	if b.timer < 0 {
		return 0
	}
	return b.timer
}

// inBand is the shared directional containment test, parameterized by the
// horizontal half-width. Keeping the two thresholds on one code path stops
// them from drifting apart.
func (b *Beam) inBand(player, target core.Vec2, halfWidth float64) bool {
	if !b.active {
		return false
	}

	dy := target.Y - player.Y
	switch b.dir {
	case BeamUp:
		if dy >= 0 { // target must be strictly above the player
			return false
		}
	case BeamDown:
		if dy <= 0 { // target must be strictly below the player
			return false
		}
	}

	return core.AbsF(target.X-player.X) <= halfWidth && core.AbsF(dy) <= b.cfg.MaxRange
}

// Contains reports whether the target lies inside the narrow activation
// band of the beam. Used to start an attraction.
func (b *Beam) Contains(player, target core.Vec2) bool {
	return b.inBand(player, target, b.cfg.HalfWidth)
}

// Holds reports whether the target lies inside the wider hold band.
// Used only to continue an existing attraction, never to start one; the
// two-threshold design prevents a pickup from oscillating in and out of
// the beam boundary while it moves under attraction.
func (b *Beam) Holds(player, target core.Vec2) bool {
	return b.inBand(player, target, b.cfg.HoldHalfWidth)
}

// AttractionForce returns the unit vector from target toward player, or a
// zero vector when the beam is inactive, the target is outside the narrow
// band, or the target coincides with the player.
func (b *Beam) AttractionForce(player, target core.Vec2) core.Vec2 {
	if !b.Contains(player, target) {
		return core.Vec2{}
	}
	return unitToward(target, player)
}

// unitToward returns the normalized vector pointing from src to dst, or a
// zero vector when the two coincide.
func unitToward(src, dst core.Vec2) core.Vec2 {
	dx := dst.X - src.X
	dy := dst.Y - src.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return core.Vec2{}
	}
	return core.Vec2{X: dx / length, Y: dy / length}
}
