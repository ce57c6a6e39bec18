package sim

// AudioEvent is a discrete audio-trigger token. The simulation appends
// events to a queue and the platform's audio layer drains them once per
// frame; the simulation never blocks on their consumption.
type AudioEvent int

const (
	AudioThrusterStart AudioEvent = iota
	AudioThrusterStop
	AudioBeamActivation
	AudioFuelPickup
	AudioDeath
	AudioButtonClick
)

// String returns a human-readable name for the event.
func (e AudioEvent) String() string {
	switch e {
	case AudioThrusterStart:
		return "ThrusterStart"
	case AudioThrusterStop:
		return "ThrusterStop"
	case AudioBeamActivation:
		return "BeamActivation"
	case AudioFuelPickup:
		return "FuelPickup"
	case AudioDeath:
		return "Death"
	case AudioButtonClick:
		return "ButtonClick"
	default:
		return "Unknown"
	}
}

// AudioQueue collects audio events during a frame, in trigger order.
type AudioQueue struct {
	events []AudioEvent
}

// Push appends an event to the queue.
func (q *AudioQueue) Push(e AudioEvent) {
	q.events = append(q.events, e)
}

// Drain returns all queued events and empties the queue.
func (q *AudioQueue) Drain() []AudioEvent {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *AudioQueue) Len() int {
	return len(q.events)
}

// AudioState tracks looping sounds so start/stop events fire only on
// transitions, not on every frame the condition holds.
type AudioState struct {
	thrusterPlaying bool
}

// UpdateThruster reconciles the thruster loop with whether it should play.
// Returns the transition event and true when the state changed.
func (s *AudioState) UpdateThruster(shouldPlay bool) (AudioEvent, bool) {
	if s.thrusterPlaying == shouldPlay {
		return 0, false
	}
	s.thrusterPlaying = shouldPlay
	if shouldPlay {
		return AudioThrusterStart, true
	}
	return AudioThrusterStop, true
}

// StopAll silences looping sounds. Returns true if the thruster loop was
// playing and a stop event should be emitted.
func (s *AudioState) StopAll() bool {
	was := s.thrusterPlaying
	s.thrusterPlaying = false
	return was
}
