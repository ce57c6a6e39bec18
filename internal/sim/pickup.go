package sim

import (
	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// PickupKind identifies what a pickup grants when collected.
// Currently only fuel depots exist; consumers switch over the kind so new
// variants surface as compile-time gaps rather than silent fallthroughs.
type PickupKind int

const (
	PickupFuel PickupKind = iota
)

// String returns a human-readable name for the kind.
func (k PickupKind) String() string {
	switch k {
	case PickupFuel:
		return "Fuel"
	default:
		return "Unknown"
	}
}

// Pickup is a collectible item attached to a cave wall. OriginalPosition
// never changes after spawning: it is the anchor the pickup snaps back to
// when a tractor-beam attraction ends without collection.
type Pickup struct {
	Position         core.Vec2
	OriginalPosition core.Vec2
	Kind             PickupKind
	OnCeiling        bool
	Collected        bool
	BeingAttracted   bool
}

// PickupManager spawns collectibles along the tunnel using distance-based
// stochastic placement, tracks collection state and applies tractor-beam
// attraction with hysteresis.
type PickupManager struct {
	pickups           []Pickup
	rng               *core.Stream
	cfg               config.PickupConfig
	lastSpawnX        float64
	nextSpawnDistance float64
}

// NewPickupManager creates a manager whose RNG is offset from the cave
// seed so pickup placement does not correlate with cave shape. The spawn
// cursor starts with the initial delay pending, so the first pickup of a
// run appears only after that distance.
func NewPickupManager(seed uint32, cfg config.PickupConfig) *PickupManager {
	m := &PickupManager{
		rng: core.NewStream(seed + cfg.SeedOffset),
		cfg: cfg,
	}
	m.resetSpawnCursor()
	return m
}

// resetSpawnCursor arms the "first pickup after the initial delay" state.
func (m *PickupManager) resetSpawnCursor() {
	m.lastSpawnX = 0
	m.nextSpawnDistance = m.cfg.InitialSpawnDelay
}

// ShouldSpawn reports whether a pickup should spawn at x, given the active
// level's average spawn distance. On a true result the spawn cursor
// advances and the next spawn distance is re-rolled within ±variation of
// the average — the call is NOT idempotent and must be made at most once
// per candidate spawn point.
func (m *PickupManager) ShouldSpawn(x, averageDistance float64) bool {
	if x < m.lastSpawnX+m.nextSpawnDistance {
		return false
	}

	variation := averageDistance * m.cfg.SpawnVariation
	m.nextSpawnDistance = m.rng.Range(averageDistance-variation, averageDistance+variation)
	m.lastSpawnX = x
	return true
}

// SpawnFuel appends a fuel pickup at x, attached to the ceiling or floor
// by a fair coin flip. The placement is offset inward from the chosen wall
// so the pickup sits fully inside the tunnel.
func (m *PickupManager) SpawnFuel(x, ceilingY, floorY float64) {
	onCeiling := m.rng.Chance(0.5)

	var y float64
	if onCeiling {
		y = ceilingY + m.cfg.WallOffset
	} else {
		y = floorY - m.cfg.Size - m.cfg.WallOffset
	}

	pos := core.Vec2{X: x, Y: y}
	m.pickups = append(m.pickups, Pickup{
		Position:         pos,
		OriginalPosition: pos,
		Kind:             PickupFuel,
		OnCeiling:        onCeiling,
	})
}

// PickupsInRange returns copies of all non-collected pickups inside
// [xMin, xMax] inclusive.
func (m *PickupManager) PickupsInRange(xMin, xMax float64) []Pickup {
	var out []Pickup
	for _, p := range m.pickups {
		if !p.Collected && p.Position.X >= xMin && p.Position.X <= xMax {
			out = append(out, p)
		}
	}
	return out
}

// CheckCollision scans pickups in spawn order and returns the index of the
// first non-collected pickup whose box overlaps the player's box. The
// second return is false when nothing collides.
func (m *PickupManager) CheckCollision(playerPos, playerSize core.Vec2) (int, bool) {
	size := core.Vec2{X: m.cfg.Size, Y: m.cfg.Size}
	for i, p := range m.pickups {
		if p.Collected {
			continue
		}
		if core.Overlap(p.Position, size, playerPos, playerSize) {
			return i, true
		}
	}
	return 0, false
}

// Collect marks the pickup at index as collected and returns its kind.
// Returns false for an invalid index or an already collected pickup.
func (m *PickupManager) Collect(index int) (PickupKind, bool) {
	if index < 0 || index >= len(m.pickups) {
		return 0, false
	}
	p := &m.pickups[index]
	if p.Collected {
		return 0, false
	}
	p.Collected = true
	return p.Kind, true
}

// CleanupOld drops collected pickups once they are sufficiently far behind
// the camera. Uncollected pickups are never removed here, regardless of
// distance.
func (m *PickupManager) CleanupOld(cameraX float64) {
	kept := m.pickups[:0]
	for _, p := range m.pickups {
		if !p.Collected || p.Position.X > cameraX-m.cfg.CleanupDistance {
			kept = append(kept, p)
		}
	}
	m.pickups = kept
}

// UpdateAttraction advances beam attraction for every non-collected pickup.
//
// With the beam off, any attracted pickup snaps back to its original wall
// position. With the beam on, a pickup already in motion keeps being
// attracted while it stays inside the beam's wider hold band; a pickup at
// rest starts moving only when it enters the narrow activation band. The
// two thresholds (hysteresis) prevent boundary oscillation as the pickup's
// own motion carries it across the narrow band's edge.
func (m *PickupManager) UpdateAttraction(beam *Beam, playerPos core.Vec2, dt float64) {
	for i := range m.pickups {
		p := &m.pickups[i]
		if p.Collected {
			continue
		}

		if !beam.IsActive() {
			if p.BeingAttracted {
				p.Position = p.OriginalPosition
				p.BeingAttracted = false
			}
			continue
		}

		if p.BeingAttracted {
			if beam.Holds(playerPos, p.Position) {
				m.attract(p, playerPos, dt)
			} else {
				p.Position = p.OriginalPosition
				p.BeingAttracted = false
			}
			continue
		}

		if beam.Contains(playerPos, p.Position) {
			m.attract(p, playerPos, dt)
			p.BeingAttracted = true
		}
	}
}

// attract moves a pickup toward the player at the configured speed.
func (m *PickupManager) attract(p *Pickup, playerPos core.Vec2, dt float64) {
	dir := unitToward(p.Position, playerPos)
	p.Position = p.Position.Add(dir.Scale(m.cfg.AttractionSpeed * dt))
}

// AttractedPickups returns copies of all pickups currently in motion under
// the beam. Read-only query for UI and audio feedback.
func (m *PickupManager) AttractedPickups() []Pickup {
	var out []Pickup
	for _, p := range m.pickups {
		if !p.Collected && p.BeingAttracted {
			out = append(out, p)
		}
	}
	return out
}

// HasPickupsInBeamRange reports whether any non-collected pickup lies in
// the beam's narrow activation band. Read-only query for UI feedback.
func (m *PickupManager) HasPickupsInBeamRange(beam *Beam, playerPos core.Vec2) bool {
	for _, p := range m.pickups {
		if !p.Collected && beam.Contains(playerPos, p.Position) {
			return true
		}
	}
	return false
}

// ClearAll empties the pickup collection and re-arms the spawn cursor so
// the next pickup appears after the initial delay. Used by level
// transitions.
func (m *PickupManager) ClearAll() {
	m.pickups = m.pickups[:0]
	m.resetSpawnCursor()
}

// ActiveCount returns the number of non-collected pickups.
func (m *PickupManager) ActiveCount() int {
	n := 0
	for _, p := range m.pickups {
		if !p.Collected {
			n++
		}
	}
	return n
}

// Pickups returns the full pickup list in spawn order, including collected
// entries awaiting cleanup.
func (m *PickupManager) Pickups() []Pickup {
	return m.pickups
}

// Size returns the configured pickup box edge length.
func (m *PickupManager) Size() float64 {
	return m.cfg.Size
}
