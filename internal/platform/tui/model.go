package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RainerBlessing/fuel-drift/internal/config"
	"github.com/RainerBlessing/fuel-drift/internal/core"
	"github.com/RainerBlessing/fuel-drift/internal/sim"
	"github.com/RainerBlessing/fuel-drift/internal/storage"
)

// Model is the Bubble Tea model driving a Fuel Drift session.
type Model struct {
	world    *sim.World
	renderer *Renderer
	screen   *core.Screen
	keys     *KeyMapper
	store    *storage.Store
	runtime  core.RuntimeConfig

	pending  core.Input // input collected since the last tick
	dt       float64
	quitting bool
	runSaved bool // whether the current game over has been persisted
}

// NewModel creates a model for the given gameplay and runtime
// configuration. A zero seed is replaced with a time-derived one.
func NewModel(gameCfg config.Config, store *storage.Store, runtime core.RuntimeConfig) (Model, error) {
	if runtime.Seed == 0 {
		runtime.Seed = uint32(time.Now().UnixNano())
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	world, err := sim.NewWorld(runtime.Seed, gameCfg)
	if err != nil {
		return Model{}, err
	}

	return Model{
		world:    world,
		renderer: NewRenderer(world),
		screen:   core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		keys:     NewKeyMapper(),
		store:    store,
		runtime:  runtime,
		dt:       1.0 / float64(runtime.TickRate),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKey(msg, &m.pending) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.world.Phase() == sim.PhaseGameOver

	m.world.Step(m.dt, m.pending)
	m.pending = core.Input{}

	// The terminal has no audio backend; drain the queue so it stays
	// empty between frames.
	m.world.DrainAudio()

	if m.world.Phase() == sim.PhaseGameOver {
		if !wasOver && !m.runSaved {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveRun persists the finished run. Best-effort: a storage failure never
// interrupts play.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // best effort, the game keeps running either way
	m.store.SaveRun(storage.RunEntry{
		Distance: m.world.Distance().DistanceInt(),
		Level:    m.world.Levels().CurrentNumber(),
		Duration: m.world.Distance().Elapsed(),
		Seed:     int64(m.runtime.Seed),
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(gameCfg config.Config, store *storage.Store, runtime core.RuntimeConfig) error {
	model, err := NewModel(gameCfg, store, runtime)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
