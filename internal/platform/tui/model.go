package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/handplay/fingersnake/internal/config"
	"github.com/handplay/fingersnake/internal/core"
	"github.com/handplay/fingersnake/internal/input"
	"github.com/handplay/fingersnake/internal/snake"
	"github.com/handplay/fingersnake/internal/storage"
)

// Model is the Bubble Tea model hosting the engine. Terminal mouse motion
// stands in for the hand tracker: each motion event is mapped from screen
// cells into the engine's playfield pixel space and fed through the input
// tracker, which turns the event stream into the polled optional sample
// the engine expects.
type Model struct {
	engine  *snake.Engine
	tracker *input.Tracker
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger

	gameCfg   config.GameConfig
	runtime   core.RuntimeConfig
	snap      snake.Snapshot
	highScore int
	startedAt time.Time
	runSaved  bool // whether the current game-over run has been recorded
	quitting  bool
}

// NewModel creates the host model. The engine is constructed here, so an
// invalid configuration surfaces before the terminal is put into raw mode.
func NewModel(gameCfg config.GameConfig, store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if runtime.PollRate == 0 {
		runtime.PollRate = gameCfg.Timing.PollRate
	}
	if logger == nil {
		logger = log.Default()
	}

	engine, err := snake.New(gameCfg.Layout.FrameWidth, gameCfg.Layout.FrameHeight, gameCfg.Engine(), runtime.Seed)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create engine: %w", err)
	}

	m := Model{
		engine:    engine,
		tracker:   input.NewTracker(gameCfg.PointerTTL()),
		screen:    core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:     store,
		logger:    logger,
		gameCfg:   gameCfg,
		runtime:   runtime,
		snap:      engine.Snapshot(),
		startedAt: time.Now(),
	}
	m.loadHighScore()
	return m, nil
}

// loadHighScore fetches the best recorded score for the HUD.
func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	if high, err := m.store.HighScore(); err == nil {
		m.highScore = high
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	m.engine.Reset(time.Now())
	return pollCmd(m.runtime.PollRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case PollMsg:
		return m.handlePoll(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		if m.snap.GameOver {
			m.engine.Reset(time.Now())
			m.snap = m.engine.Snapshot()
			m.tracker.Clear()
			m.runSaved = false
			m.startedAt = time.Now()
			m.loadHighScore()
		}
	}
	return m, nil
}

// handleMouse maps a mouse event into a pointer observation.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.tracker.Observe(m.screenToPlayfield(msg.X, msg.Y), time.Now())
	return m, nil
}

// screenToPlayfield converts a terminal cell position to playfield pixel
// space. The mapping extends linearly beyond the drawn board, so pointing
// below it (the reserved hand space in the original layout) still steers.
func (m Model) screenToPlayfield(x, y int) core.Pixel {
	r := boardRect(m.runtime.ScreenW, m.snap)
	board := m.engine.Board()
	return board.CellCenter(snake.Cell{X: x - (r.X + 1), Y: y - (r.Y + 1)})
}

// handlePoll runs one engine poll.
func (m Model) handlePoll(now time.Time) (tea.Model, tea.Cmd) {
	var pointer *core.Pixel
	if p, ok := m.tracker.Current(now); ok {
		pointer = &p
	}

	m.snap = m.engine.Update(now, pointer)

	// Record the run once per game over.
	if m.snap.GameOver && !m.runSaved {
		m.saveRun(now)
		m.runSaved = true
	}

	return m, pollCmd(m.runtime.PollRate)
}

// saveRun persists the finished run, best effort.
func (m *Model) saveRun(now time.Time) {
	if m.store == nil || m.snap.Score <= 0 {
		return
	}
	duration := int(now.Sub(m.startedAt).Seconds())
	if _, err := m.store.SaveRun(m.snap.Score, len(m.snap.Body), duration); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	if m.snap.Score > m.highScore {
		m.highScore = m.snap.Score
	}
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.snap, m.highScore, time.Now())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(gameCfg config.GameConfig, store *storage.Store, runtime core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(gameCfg, store, runtime, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // the mouse is the pointer source
	)

	_, err = p.Run()
	return err
}
