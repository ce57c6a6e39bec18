package sim

import (
	"errors"
	"fmt"

	"github.com/RainerBlessing/fuel-drift/internal/config"
)

// Level system errors. ErrInvalidLevelIndex should be unreachable given
// that the index is always clamped, but it is surfaced as a recoverable
// error rather than a panic.
var (
	ErrEmptyLevelList    = errors.New("no levels configured")
	ErrInvalidLevelIndex = errors.New("invalid level index")
)

// LevelManager advances through an ordered list of level configurations
// based on elapsed play time. Progression caps at the last level.
type LevelManager struct {
	levels     []config.LevelConfig
	current    int
	levelStart float64
}

// NewLevelManager creates a manager over the given levels.
// An empty list is rejected at construction time.
func NewLevelManager(levels []config.LevelConfig) (*LevelManager, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyLevelList
	}
	return &LevelManager{levels: levels}, nil
}

// Current returns the active level's configuration.
func (m *LevelManager) Current() (config.LevelConfig, error) {
	if m.current < 0 || m.current >= len(m.levels) {
		return config.LevelConfig{}, fmt.Errorf("%w: %d", ErrInvalidLevelIndex, m.current)
	}
	return m.levels[m.current], nil
}

// CurrentNumber returns the active level's number, or 1 if the index is
// somehow out of range.
func (m *LevelManager) CurrentNumber() int {
	lvl, err := m.Current()
	if err != nil {
		return 1
	}
	return lvl.Number
}

// Update checks for level progression at the given play time and returns
// true if the level changed this call.
func (m *LevelManager) Update(currentTime float64) (bool, error) {
	lvl, err := m.Current()
	if err != nil {
		return false, err
	}

	if currentTime-m.levelStart < lvl.Duration {
		return false, nil
	}

	if m.current < len(m.levels)-1 {
		m.current++
	}
	m.levelStart = currentTime
	return true, nil
}

// Progress returns how far through the current level play time has
// advanced, clamped to [0, 1].
func (m *LevelManager) Progress(currentTime float64) (float64, error) {
	lvl, err := m.Current()
	if err != nil {
		return 0, err
	}
	if lvl.Duration <= 0 {
		return 1, nil
	}

	progress := (currentTime - m.levelStart) / lvl.Duration
	if progress < 0 {
		return 0, nil
	}
	if progress > 1 {
		return 1, nil
	}
	return progress, nil
}

// Reset returns the manager to the first level.
func (m *LevelManager) Reset() {
	m.current = 0
	m.levelStart = 0
}
