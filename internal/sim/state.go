package sim

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PhaseEvent triggers a phase transition.
type PhaseEvent int

const (
	EventStart PhaseEvent = iota
	EventPauseToggle
	EventDead
	EventBackToMenu
	EventReset
)

// Next returns the phase reached from p by the given event.
// Invalid combinations leave the phase unchanged.
func (p Phase) Next(event PhaseEvent) Phase {
	switch {
	case p == PhaseMenu && event == EventStart:
		return PhasePlaying
	case p == PhasePlaying && event == EventPauseToggle:
		return PhasePaused
	case p == PhasePlaying && event == EventDead:
		return PhaseGameOver
	case p == PhasePaused && event == EventPauseToggle:
		return PhasePlaying
	case p == PhasePaused && event == EventBackToMenu:
		return PhaseMenu
	case p == PhaseGameOver && event == EventStart:
		return PhasePlaying
	case p == PhaseGameOver && event == EventBackToMenu:
		return PhaseMenu
	case event == EventReset:
		return PhaseMenu
	default:
		return p
	}
}

// PhaseMachine encapsulates the current phase and its transitions.
type PhaseMachine struct {
	current Phase
}

// Current returns the active phase.
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// Handle processes an event and transitions to the next phase.
func (m *PhaseMachine) Handle(event PhaseEvent) {
	m.current = m.current.Next(event)
}
