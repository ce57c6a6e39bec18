package core

// Input is the per-frame input record consumed by the simulation.
// Thrust flags are level-triggered (held keys); the tractor flags are
// one-shot and must be edge-detected by the platform layer before they
// reach the simulation.
type Input struct {
	Up    bool // Upward thrust
	Down  bool // Downward thrust
	Left  bool // Brake (no fuel cost)
	Right bool // Forward acceleration

	TractorUp   bool // Activate upward tractor beam (one-shot)
	TractorDown bool // Activate downward tractor beam (one-shot)

	PauseToggle bool // Pause/unpause request (one-shot)
	Confirm     bool // Menu confirm / start (one-shot)
	Back        bool // Back to menu (one-shot)
}

// Thrusting returns true if any directional thrust is held.
func (in Input) Thrusting() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// ConsumesFuel returns true if this frame's input burns fuel.
// Right movement (acceleration) consumes fuel, left movement (braking)
// does not.
func (in Input) ConsumesFuel() bool {
	return in.Up || in.Down || in.Right
}
