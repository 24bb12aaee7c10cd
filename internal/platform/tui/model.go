package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/buzzy-bird/internal/audio"
	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
	"github.com/vovakirdan/buzzy-bird/internal/game"
	"github.com/vovakirdan/buzzy-bird/internal/pitch"
	"github.com/vovakirdan/buzzy-bird/internal/storage"
)

// SyncWait bounds how long Run waits for pending score syncs on exit.
const SyncWait = 3 * time.Second

// Options configures a terminal session.
type Options struct {
	Player  string
	Runtime core.RuntimeConfig // Seed 0 picks a fresh seed every round
	Hold    time.Duration      // virtual voice hold window
	Best    int                // player's stored high score
	Syncer  *storage.Syncer
	Audio   audio.Player
	Logger  *log.Logger
}

// syncedMsg carries the outcome of a submitted round back to the model.
type syncedMsg storage.Result

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game       *game.Game
	voice      *pitch.KeySource
	screen     *core.Screen
	keys       *KeyMapper
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	start      time.Time
	best       int
	notice     string
	submitted  bool // whether the current round has been sent to storage
	quitting   bool
}

// NewModel creates a session around g. The round starts when the player
// presses Enter.
func NewModel(g *game.Game, opts Options) Model {
	if opts.Syncer == nil {
		opts.Syncer = storage.NewSyncer(nil, opts.Logger)
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	g.Resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	return Model{
		game:       g,
		voice:      pitch.NewKeySource(g.Simulation(), opts.Hold),
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:       NewKeyMapper(),
		opts:       opts,
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
		start:      time.Now(),
		best:       opts.Best,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case syncedMsg:
		return m.handleSynced(storage.Result(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.game.Quit()
		return m, tea.Quit
	}

	switch {
	case IsVoice(action):
		if m.gameState.Running {
			m.voice.Apply(action, time.Since(m.start))
		}
	case action == core.ActionConfirm && !m.gameState.Running:
		m.inputFrame.Set(core.ActionRestart)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The round keeps going; only
// the playfield is rescaled.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.config.TickRate)

	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.Running {
		m.startRound()
		m.inputFrame.Clear()
		return m, next
	}

	now := t.Sub(m.start)
	m.inputFrame.Now = now
	m.inputFrame.Pitch = m.voice.Sample(now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	audio.PlayEvents(m.opts.Audio, result.Events)
	for _, e := range result.Events {
		m.opts.Logger.Debug("event", "kind", e.Kind, "score", e.Score, "at", now)
	}

	if m.gameState.GameOver && !m.submitted {
		m.submitted = true
		m.voice.Silence()
		return m, tea.Batch(next, m.submit())
	}

	return m, next
}

// startRound resets the game for a new round.
func (m *Model) startRound() {
	rt := m.config
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	m.game.Reset(rt)
	m.gameState = m.game.State()
	m.voice.Silence()
	m.submitted = false
	m.notice = ""
	m.opts.Logger.Info("round started", "player", m.opts.Player, "seed", rt.Seed)
}

// submit sends the finished round to storage and returns a command that
// delivers the outcome.
func (m Model) submit() tea.Cmd {
	sim := m.game.Simulation()
	round := storage.Round{
		Player:        m.opts.Player,
		Score:         m.gameState.Score,
		PipeSpeed:     sim.PipeSpeed,
		PipesPerBreak: sim.PipesPerBreak,
	}
	m.opts.Logger.Info("round over", "player", round.Player, "score", round.Score)

	ch := m.opts.Syncer.Submit(round)
	return func() tea.Msg {
		return syncedMsg(<-ch)
	}
}

func (m Model) handleSynced(res storage.Result) (tea.Model, tea.Cmd) {
	if res.Err != nil {
		m.notice = "Score not saved"
		return m, nil
	}
	if res.NewHigh {
		m.notice = fmt.Sprintf("New best: %d!", res.Player.HighScore)
	}
	m.best = res.Player.HighScore
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	base, err := config.DataDir()
	if err != nil {
		return
	}
	dir := filepath.Join(base, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawOverlay()
	return RenderScreen(m.screen)
}

// drawOverlay adds session details the game itself does not know about.
func (m Model) drawOverlay() {
	s := m.screen
	if s.Height() < 3 || (!m.gameState.Running && !m.gameState.GameOver) {
		return
	}

	bottom := s.Height() - 1
	voice := fmt.Sprintf(" ♪ %s ", m.voice.Note())
	color := core.ColorVoiceOff
	if m.voice.Sample(time.Since(m.start)).Valid {
		color = core.ColorVoiceOn
	}
	s.DrawTextColor(2, bottom, voice, color)

	best := fmt.Sprintf(" %s  Best: %d ", m.opts.Player, max(m.best, m.gameState.Score))
	s.DrawTextColor(s.Width()-len([]rune(best))-2, bottom, best, core.ColorWhite)

	if m.notice != "" {
		s.DrawTextCentered(s.Height()/2+4, m.notice, core.ColorBrightYellow)
	}
}

// Run starts the Bubble Tea program and waits for pending score syncs
// before returning.
func Run(g *game.Game, opts Options) error {
	model := NewModel(g, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	if !model.opts.Syncer.Wait(SyncWait) {
		model.opts.Logger.Warn("exiting with unsaved rounds", "pending", model.opts.Syncer.Pending())
	}
	return err
}
