package sim

import (
	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

// playerStart is the craft's spawn position in world units.
var playerStart = core.Vec2{X: 100, Y: 300}

// World ties the simulation subsystems together and advances them one
// frame at a time. It is driven entirely by an external loop supplying a
// time delta and an input record; nothing in here reads the clock or runs
// concurrently, so equal seeds and input scripts replay identically.
type World struct {
	cfg  config.Config
	seed uint32

	phase      PhaseMachine
	player     Player
	fuel       Fuel
	cave       *Cave
	beam       Beam
	distance   DistanceTracker
	levels     *LevelManager
	audio      AudioQueue
	audioState AudioState

	cameraX    float64
	flashTimer float64
}

// NewWorld creates a world in the menu phase.
// Fails only if the configuration carries no levels.
func NewWorld(seed uint32, cfg config.Config) (*World, error) {
	levels, err := NewLevelManager(cfg.Levels)
	if err != nil {
		return nil, err
	}

	w := &World{
		cfg:    cfg,
		seed:   seed,
		levels: levels,
	}
	w.resetRun()
	return w, nil
}

// resetRun rebuilds all per-run state for a fresh game.
func (w *World) resetRun() {
	w.player = NewPlayer(playerStart, w.cfg.Player)
	w.fuel = NewFuel(w.cfg.Fuel.Max, w.cfg.Fuel.BurnRate)
	w.beam = NewBeam(w.cfg.Beam)
	w.distance.Reset()
	w.levels.Reset()
	w.cameraX = 0
	w.flashTimer = 0
	w.cave = NewCave(w.seed, w.cfg.Cave, w.cfg.Pickups)
	w.cave.ConfigureForLevel(1)
}

// fuelSpawnDistance returns the active level's average fuel spawn
// distance, falling back to the configured default.
func (w *World) fuelSpawnDistance() float64 {
	lvl, err := w.levels.Current()
	if err != nil {
		return w.cfg.Pickups.DefaultSpawnDistance
	}
	return lvl.FuelSpawnDistance
}

// Step advances the simulation by one frame.
func (w *World) Step(dt float64, in core.Input) {
	w.handlePhaseInput(in)

	if w.phase.Current() != PhasePlaying {
		if w.audioState.StopAll() {
			w.audio.Push(AudioThrusterStop)
		}
		w.tickFlash(dt)
		return
	}

	w.cameraX += w.cfg.World.ScrollSpeed * dt
	w.distance.Update(w.cfg.World.ScrollSpeed, dt)

	w.updateLevel()
	w.updatePlayer(dt, in)

	// Fuel exhaustion may have ended the run this frame.
	if w.phase.Current() == PhasePlaying {
		w.updateCollisions(dt)
	}

	w.tickFlash(dt)
}

// handlePhaseInput maps one-shot menu/pause inputs to phase transitions.
func (w *World) handlePhaseInput(in core.Input) {
	switch w.phase.Current() {
	case PhaseMenu:
		if in.Confirm {
			w.audio.Push(AudioButtonClick)
			w.resetRun()
			w.phase.Handle(EventStart)
		}
	case PhasePlaying:
		if in.PauseToggle {
			w.phase.Handle(EventPauseToggle)
		}
	case PhasePaused:
		if in.PauseToggle {
			w.phase.Handle(EventPauseToggle)
		} else if in.Back {
			w.audio.Push(AudioButtonClick)
			w.phase.Handle(EventBackToMenu)
		}
	case PhaseGameOver:
		if in.Confirm {
			w.audio.Push(AudioButtonClick)
			w.resetRun()
			w.phase.Handle(EventStart)
		} else if in.Back {
			w.audio.Push(AudioButtonClick)
			w.phase.Handle(EventBackToMenu)
		}
	}
}

// updateLevel checks for level progression and reconfigures the cave when
// the level changes.
func (w *World) updateLevel() {
	changed, err := w.levels.Update(w.distance.Elapsed())
	if err != nil || !changed {
		return
	}
	w.cave.ConfigureForLevel(w.levels.CurrentNumber())
	w.audio.Push(AudioButtonClick)
}

// updatePlayer handles beam activation, fuel burn and player physics.
func (w *World) updatePlayer(dt float64, in core.Input) {
	if in.TractorUp {
		w.beam.Activate(BeamUp)
		w.audio.Push(AudioBeamActivation)
	}
	if in.TractorDown {
		w.beam.Activate(BeamDown)
		w.audio.Push(AudioBeamActivation)
	}
	w.beam.Tick(dt)

	consuming := in.ConsumesFuel()
	if event, changed := w.audioState.UpdateThruster(consuming); changed {
		w.audio.Push(event)
	}

	if w.fuel.Burn(dt, consuming) {
		w.die()
		return
	}

	if !w.fuel.IsEmpty() {
		w.player.Tick(dt, in, w.cfg.World.ScrollSpeed, w.cameraX, w.cfg.World.Width)
	}
}

// updateCollisions runs beam attraction, wall collision, pickup collection
// and pickup cleanup.
func (w *World) updateCollisions(dt float64) {
	w.cave.Pickups().UpdateAttraction(&w.beam, w.player.Pos, dt)

	if w.playerHitsWall() {
		w.die()
		return
	}

	playerBox := w.playerBoxTopLeft()
	if index, ok := w.cave.Pickups().CheckCollision(playerBox, w.player.Size()); ok {
		if kind, collected := w.cave.Pickups().Collect(index); collected {
			w.applyPickup(kind)
		}
	}

	w.cave.Pickups().CleanupOld(w.cameraX)
}

// playerBoxTopLeft converts the player's center position to the top-left
// corner used by AABB checks.
func (w *World) playerBoxTopLeft() core.Vec2 {
	size := w.player.Size()
	return core.Vec2{X: w.player.Pos.X - size.X/2, Y: w.player.Pos.Y - size.Y/2}
}

// playerHitsWall tests the player's box against the ceiling and floor
// boxes of every visible segment.
func (w *World) playerHitsWall() bool {
	playerBox := w.playerBoxTopLeft()
	size := w.player.Size()

	viewEnd := w.cameraX + w.cfg.World.Width
	for _, seg := range w.cave.SegmentsInView(w.cameraX, viewEnd, w.fuelSpawnDistance()) {
		ceiling := core.NewAABB(seg.XStart, 0, seg.Width, seg.Ceiling)
		floor := core.NewAABB(seg.XStart, seg.Floor, seg.Width, w.cfg.World.Height-seg.Floor)

		box := core.NewAABB(playerBox.X, playerBox.Y, size.X, size.Y)
		if box.Overlaps(ceiling) || box.Overlaps(floor) {
			return true
		}
	}
	return false
}

// applyPickup grants a collected pickup's effect.
func (w *World) applyPickup(kind PickupKind) {
	switch kind {
	case PickupFuel:
		w.fuel.Refill(w.fuel.Max * w.cfg.Fuel.RefillFraction)
		w.audio.Push(AudioFuelPickup)
	}
}

// die ends the run: death sound, game-over phase, collision flash, and
// thruster loop shutdown.
func (w *World) die() {
	w.audio.Push(AudioDeath)
	w.phase.Handle(EventDead)
	w.flashTimer = w.cfg.World.CollisionFlashDuration
	if w.audioState.StopAll() {
		w.audio.Push(AudioThrusterStop)
	}
}

func (w *World) tickFlash(dt float64) {
	if w.flashTimer > 0 {
		w.flashTimer -= dt
		if w.flashTimer < 0 {
			w.flashTimer = 0
		}
	}
}

// Phase returns the current game phase.
func (w *World) Phase() Phase {
	return w.phase.Current()
}

// CameraX returns the camera's world x-offset.
func (w *World) CameraX() float64 {
	return w.cameraX
}

// Player returns the craft's physics state.
func (w *World) Player() *Player {
	return &w.player
}

// Fuel returns the fuel tank.
func (w *World) Fuel() *Fuel {
	return &w.fuel
}

// Beam returns the tractor beam.
func (w *World) Beam() *Beam {
	return &w.beam
}

// Cave returns the cave generator.
func (w *World) Cave() *Cave {
	return w.cave
}

// Distance returns the distance tracker.
func (w *World) Distance() *DistanceTracker {
	return &w.distance
}

// Levels returns the level manager.
func (w *World) Levels() *LevelManager {
	return w.levels
}

// FlashTimer returns the remaining collision flash time in seconds.
func (w *World) FlashTimer() float64 {
	return w.flashTimer
}

// Config returns the world's gameplay configuration.
func (w *World) Config() config.Config {
	return w.cfg
}

// DrainAudio returns and clears the frame's queued audio events.
func (w *World) DrainAudio() []AudioEvent {
	return w.audio.Drain()
}
