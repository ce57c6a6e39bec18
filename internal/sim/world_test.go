package sim

import (
	"testing"

	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(12345, config.Default())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// startRun drives a fresh world from the menu into the playing phase.
func startRun(t *testing.T, w *World) {
	t.Helper()
	w.Step(dt60, core.Input{Confirm: true})
	if w.Phase() != PhasePlaying {
		t.Fatalf("phase after confirm = %v, expected Playing", w.Phase())
	}
	w.DrainAudio()
}

func TestNewWorldStartsInMenu(t *testing.T) {
	w := newTestWorld(t)

	if w.Phase() != PhaseMenu {
		t.Errorf("initial phase = %v, expected Menu", w.Phase())
	}
	if w.CameraX() != 0 {
		t.Errorf("initial camera = %f, expected 0", w.CameraX())
	}
	if !floatEq(w.Fuel().Ratio(), 1) {
		t.Errorf("initial fuel ratio = %f, expected full", w.Fuel().Ratio())
	}
}

func TestNewWorldRejectsEmptyLevels(t *testing.T) {
	cfg := config.Default()
	cfg.Levels = nil

	if _, err := NewWorld(1, cfg); err == nil {
		t.Error("expected an error for a configuration without levels")
	}
}

func TestWorldIdleInMenu(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 120; i++ {
		w.Step(dt60, core.Input{})
	}

	if w.Phase() != PhaseMenu {
		t.Errorf("phase = %v, expected to stay in Menu", w.Phase())
	}
	if w.CameraX() != 0 {
		t.Errorf("camera moved to %f while in menu", w.CameraX())
	}
	if w.Distance().Distance() != 0 {
		t.Errorf("distance accumulated to %f while in menu", w.Distance().Distance())
	}
}

func TestWorldStartScrolls(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t)
	startRun(t, w)

	for i := 0; i < 60; i++ {
		w.Step(dt60, core.Input{})
	}

	want := cfg.World.ScrollSpeed * (61.0 / 60.0) // start frame scrolls too
	if !floatEq(w.CameraX(), want) {
		t.Errorf("camera = %f after ~1s, expected %f", w.CameraX(), want)
	}
	if !floatEq(w.Distance().Distance(), want) {
		t.Errorf("distance = %f, expected %f", w.Distance().Distance(), want)
	}

	// Coasting burns no fuel.
	if !floatEq(w.Fuel().Ratio(), 1) {
		t.Errorf("fuel ratio = %f after coasting, expected full", w.Fuel().Ratio())
	}
}

func TestWorldStartEmitsButtonClick(t *testing.T) {
	w := newTestWorld(t)

	w.Step(dt60, core.Input{Confirm: true})

	events := w.DrainAudio()
	if len(events) == 0 || events[0] != AudioButtonClick {
		t.Errorf("start events = %v, expected leading ButtonClick", events)
	}
}

func TestWorldPauseFreezesSimulation(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)
	w.Step(dt60, core.Input{})

	w.Step(dt60, core.Input{PauseToggle: true})
	if w.Phase() != PhasePaused {
		t.Fatalf("phase = %v, expected Paused", w.Phase())
	}

	camera := w.CameraX()
	distance := w.Distance().Distance()
	playerPos := w.Player().Pos

	for i := 0; i < 120; i++ {
		w.Step(dt60, core.Input{Up: true, Right: true})
	}

	if w.CameraX() != camera {
		t.Errorf("camera advanced while paused: %f -> %f", camera, w.CameraX())
	}
	if w.Distance().Distance() != distance {
		t.Errorf("distance advanced while paused")
	}
	if w.Player().Pos != playerPos {
		t.Errorf("player moved while paused: %v -> %v", playerPos, w.Player().Pos)
	}
	if !floatEq(w.Fuel().Ratio(), 1) {
		t.Errorf("fuel burned while paused: ratio %f", w.Fuel().Ratio())
	}
}

func TestWorldPauseResume(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{PauseToggle: true})
	w.Step(dt60, core.Input{PauseToggle: true})

	if w.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected Playing after resume", w.Phase())
	}
}

func TestWorldPauseBackToMenu(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{PauseToggle: true})
	w.Step(dt60, core.Input{Back: true})

	if w.Phase() != PhaseMenu {
		t.Errorf("phase = %v, expected Menu", w.Phase())
	}
}

func TestWorldFuelDepletionKills(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t)
	startRun(t, w)

	// Nearly empty tank: one thrusting frame crosses to zero.
	w.Fuel().Current = 0.001

	w.Step(dt60, core.Input{Up: true})

	if w.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver on fuel exhaustion", w.Phase())
	}
	if !floatEq(w.FlashTimer(), cfg.World.CollisionFlashDuration-dt60) {
		t.Errorf("flash timer = %f, expected %f minus one tick",
			w.FlashTimer(), cfg.World.CollisionFlashDuration)
	}

	events := w.DrainAudio()
	var sawDeath bool
	for _, e := range events {
		if e == AudioDeath {
			sawDeath = true
		}
	}
	if !sawDeath {
		t.Errorf("events %v missing Death", events)
	}
}

func TestWorldLeftBrakeIsFree(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	for i := 0; i < 60; i++ {
		w.Step(dt60, core.Input{Left: true})
	}

	if !floatEq(w.Fuel().Ratio(), 1) {
		t.Errorf("braking left burned fuel: ratio %f", w.Fuel().Ratio())
	}
}

func TestWorldThrustBurnsFuel(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{Right: true})

	want := cfg.Fuel.Max - cfg.Fuel.BurnRate*dt60
	if !floatEq(w.Fuel().Current, want) {
		t.Errorf("fuel = %f after one thrusting frame, expected %f", w.Fuel().Current, want)
	}
}

func TestWorldWallCollisionKills(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	// Force the player into the ceiling; level 1 ceilings never rise
	// above y=30.
	w.Player().Pos.Y = 10

	w.Step(dt60, core.Input{})

	if w.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected GameOver on wall hit", w.Phase())
	}
}

func TestWorldPickupRefillsFuel(t *testing.T) {
	cfg := config.Default()
	w := newTestWorld(t)
	startRun(t, w)

	w.Fuel().Current = 50

	// Plant a pickup overlapping the player's box.
	pickups := w.Cave().Pickups()
	pickups.SpawnFuel(w.Player().Pos.X, 0, 500)
	planted := &pickups.pickups[len(pickups.pickups)-1]
	planted.Position = core.NewVec2(w.Player().Pos.X-5, w.Player().Pos.Y-5)
	planted.OriginalPosition = planted.Position

	w.Step(dt60, core.Input{})

	want := 50 + cfg.Fuel.Max*cfg.Fuel.RefillFraction
	if !floatEq(w.Fuel().Current, want) {
		t.Errorf("fuel after pickup = %f, expected %f", w.Fuel().Current, want)
	}

	events := w.DrainAudio()
	var sawPickup bool
	for _, e := range events {
		if e == AudioFuelPickup {
			sawPickup = true
		}
	}
	if !sawPickup {
		t.Errorf("events %v missing FuelPickup", events)
	}
}

func TestWorldTractorInputActivatesBeam(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{TractorUp: true})

	if !w.Beam().IsActive() {
		t.Fatal("beam inactive after tractor input")
	}
	if w.Beam().Dir() != BeamUp {
		t.Errorf("beam dir = %v, expected Up", w.Beam().Dir())
	}

	events := w.DrainAudio()
	var sawBeam bool
	for _, e := range events {
		if e == AudioBeamActivation {
			sawBeam = true
		}
	}
	if !sawBeam {
		t.Errorf("events %v missing BeamActivation", events)
	}
}

func TestWorldThrusterAudioEdges(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{Up: true})
	events := w.DrainAudio()
	if len(events) != 1 || events[0] != AudioThrusterStart {
		t.Errorf("first thrust frame events = %v, expected [ThrusterStart]", events)
	}

	// Held thrust emits nothing further.
	w.Step(dt60, core.Input{Up: true})
	if events := w.DrainAudio(); len(events) != 0 {
		t.Errorf("held thrust events = %v, expected none", events)
	}

	w.Step(dt60, core.Input{})
	events = w.DrainAudio()
	if len(events) != 1 || events[0] != AudioThrusterStop {
		t.Errorf("release events = %v, expected [ThrusterStop]", events)
	}
}

func TestWorldPauseStopsThrusterLoop(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Step(dt60, core.Input{Up: true})
	w.DrainAudio()

	// Pausing while thrusting must emit the stop edge.
	w.Step(dt60, core.Input{PauseToggle: true, Up: true})

	events := w.DrainAudio()
	var sawStop bool
	for _, e := range events {
		if e == AudioThrusterStop {
			sawStop = true
		}
	}
	if !sawStop {
		t.Errorf("pause events %v missing ThrusterStop", events)
	}
}

func TestWorldRestartAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	startRun(t, w)

	w.Fuel().Current = 0.001
	w.Step(dt60, core.Input{Up: true})
	if w.Phase() != PhaseGameOver {
		t.Fatalf("setup: expected GameOver, got %v", w.Phase())
	}

	w.Step(dt60, core.Input{Confirm: true})

	if w.Phase() != PhasePlaying {
		t.Fatalf("phase after restart = %v, expected Playing", w.Phase())
	}
	if !floatEq(w.Fuel().Ratio(), 1) {
		t.Errorf("fuel not refilled on restart: ratio %f", w.Fuel().Ratio())
	}
	if w.Levels().CurrentNumber() != 1 {
		t.Errorf("level after restart = %d, expected 1", w.Levels().CurrentNumber())
	}
	if w.Player().Pos.Y != playerStart.Y {
		t.Errorf("player Y after restart = %f, expected %f", w.Player().Pos.Y, playerStart.Y)
	}
}

func TestWorldDeterministicReplay(t *testing.T) {
	script := func(frame int) core.Input {
		in := core.Input{}
		switch {
		case frame%7 < 3:
			in.Up = true
		case frame%11 < 4:
			in.Down = true
		}
		if frame%13 == 0 {
			in.Right = true
		}
		if frame == 90 {
			in.TractorUp = true
		}
		return in
	}

	run := func() *World {
		w, err := NewWorld(4242, config.Default())
		if err != nil {
			t.Fatalf("NewWorld: %v", err)
		}
		w.Step(dt60, core.Input{Confirm: true})
		for frame := 0; frame < 600; frame++ {
			w.Step(dt60, script(frame))
		}
		return w
	}

	a, b := run(), run()

	if a.Phase() != b.Phase() {
		t.Errorf("phases diverged: %v vs %v", a.Phase(), b.Phase())
	}
	if a.Player().Pos != b.Player().Pos {
		t.Errorf("player positions diverged: %v vs %v", a.Player().Pos, b.Player().Pos)
	}
	if a.CameraX() != b.CameraX() {
		t.Errorf("cameras diverged: %f vs %f", a.CameraX(), b.CameraX())
	}
	if a.Fuel().Current != b.Fuel().Current {
		t.Errorf("fuel diverged: %f vs %f", a.Fuel().Current, b.Fuel().Current)
	}

	sa, sb := a.Cave().Segments(), b.Cave().Segments()
	if len(sa) != len(sb) {
		t.Fatalf("segment counts diverged: %d vs %d", len(sa), len(sb))
	}
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("segment %d diverged", i)
		}
	}
}

func TestWorldLevelChangeReconfiguresCave(t *testing.T) {
	cfg := config.Default()
	// Short first level so the transition arrives quickly.
	cfg.Levels = []config.LevelConfig{
		{Number: 1, Duration: 0.5, FuelSpawnDistance: 800},
		{Number: 2, Duration: 60, FuelSpawnDistance: 600},
	}

	w, err := NewWorld(7, cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.Step(dt60, core.Input{Confirm: true})

	for i := 0; i < 60; i++ {
		w.Step(dt60, core.Input{})
	}

	if w.Levels().CurrentNumber() != 2 {
		t.Fatalf("level = %d after 1s, expected 2", w.Levels().CurrentNumber())
	}

	// The cave was rebuilt with the level-2 gap.
	segs := w.Cave().Segments()
	wantGap := cfg.Cave.BaseGap - cfg.Cave.GapStep
	if !floatEq(segs[0].GapHeight(), wantGap) {
		t.Errorf("first segment gap = %f after level change, expected %f",
			segs[0].GapHeight(), wantGap)
	}
}
