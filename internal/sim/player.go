package sim

import (
	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// Player is the craft's physics state: position and velocity in world
// units. Rendering and input mapping live elsewhere.
type Player struct {
	Pos core.Vec2
	Vel core.Vec2
	cfg config.PlayerConfig
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(pos core.Vec2, cfg config.PlayerConfig) Player {
	return Player{Pos: pos, cfg: cfg}
}

// Size returns the player's collision box dimensions.
func (p *Player) Size() core.Vec2 {
	return core.Vec2{X: p.cfg.Width, Y: p.cfg.Height}
}

// Tick advances the player by one frame: gravity, thrust, horizontal
// movement with scroll compensation and screen-edge clamping, then Euler
// integration. viewWidth is the visible horizontal band the player may not
// leave relative to cameraOffsetX.
func (p *Player) Tick(dt float64, in core.Input, scrollSpeed, cameraOffsetX, viewWidth float64) {
	p.applyGravity(dt)
	p.applyThrust(dt, in)
	p.applyHorizontal(dt, in, scrollSpeed, cameraOffsetX, viewWidth)
	p.integrate(dt)
}

func (p *Player) applyGravity(dt float64) {
	p.Vel.Y += p.cfg.Gravity * dt
}

// applyThrust applies vertical impulses. Thrust is negative (upward); the
// downward impulse is a configured fraction of it.
func (p *Player) applyThrust(dt float64, in core.Input) {
	if in.Up {
		p.Vel.Y += p.cfg.Thrust * dt
	}
	if in.Down {
		p.Vel.Y += -p.cfg.Thrust * p.cfg.DownThrustMultiplier * dt
	}
}

// applyHorizontal accelerates left/right with speed clamping and keeps the
// player inside the visible band. At a boundary the outward velocity
// component is zeroed while acceleration away from the edge stays possible.
func (p *Player) applyHorizontal(dt float64, in core.Input, scrollSpeed, cameraOffsetX, viewWidth float64) {
	halfWidth := p.cfg.Width / 2
	minScreenX := halfWidth
	maxScreenX := viewWidth - halfWidth

	// Ride along with the scrolling world
	p.Pos.X += scrollSpeed * dt

	if in.Left {
		p.Vel.X -= p.cfg.HorizontalAcceleration * dt
	}
	if in.Right {
		p.Vel.X += p.cfg.HorizontalAcceleration * dt
	}

	p.Vel.X = core.ClampF(p.Vel.X, -p.cfg.MaxHorizontalSpeed, p.cfg.MaxHorizontalSpeed)

	screenX := p.Pos.X - cameraOffsetX
	if screenX < minScreenX {
		p.Pos.X = cameraOffsetX + minScreenX
		if p.Vel.X < 0 {
			p.Vel.X = 0
		}
	} else if screenX > maxScreenX {
		p.Pos.X = cameraOffsetX + maxScreenX
		if p.Vel.X > 0 {
			p.Vel.X = 0
		}
	}
}

func (p *Player) integrate(dt float64) {
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
}
