package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	engine   *engine.Engine
	session  *game.Session
	store    *storage.Store
	renderer *Renderer
	keys     *KeyMapper

	rt         core.RuntimeConfig
	snap       game.Snapshot
	quitting   bool
	scoreSaved bool // whether the score was persisted for the current game over
}

// NewModel creates a Bubble Tea model and the session it drives. The
// store may be nil, in which case scores are not persisted.
func NewModel(rules game.Rules, rt core.RuntimeConfig, store *storage.Store, th theme.Theme) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(rt.Seed))
	session := game.NewSession(core.NewGrid(rt.GridWidth, rt.GridHeight), rules, rng)

	if store != nil {
		if high, err := store.HighScore(); err == nil {
			session.SetHighScore(high)
		}
	}

	eng := engine.New(session)
	return Model{
		engine:   eng,
		session:  session,
		store:    store,
		renderer: NewRenderer(th),
		keys:     NewKeyMapper(),
		rt:       rt,
		snap:     eng.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.snap.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey records input for the next tick. Keys never mutate game
// state directly; the simulation consumes the buffer on its own clock.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if in, ok := m.keys.MapKey(msg); ok {
		m.engine.Buffer().Record(in)
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.snap = m.engine.Tick()

	if m.snap.Quitting {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.snap.Status {
	case game.StatusGameOver:
		// Save score on game over (once)
		if !m.scoreSaved && m.snap.Score > 0 {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.snap.Score, m.snap.SpeedLevel)
			}
			m.scoreSaved = true
		}
	case game.StatusPlaying:
		m.scoreSaved = false
	}

	// Interval follows the speed level, so re-arm from the snapshot
	return m, tickCmd(m.snap.TickInterval)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.RenderSnapshot(m.snap, m.rt.ControllerEnabled)
}

// Run starts the Bubble Tea program for a session built from the given
// runtime configuration.
func Run(rules game.Rules, rt core.RuntimeConfig, store *storage.Store, th theme.Theme) error {
	p := tea.NewProgram(
		NewModel(rules, rt, store, th),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
