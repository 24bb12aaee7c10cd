// Package game implements the buzzy-bird simulation: a bird steered by the
// pitch of the player's voice has to thread a stream of pipes, with a short
// rest break after every few pipes.
//
// State and Tick form the engine proper. Game wraps them for a host that
// drives frames with core.InputFrame and renders to a core.Screen.
package game

import (
	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Game is a single player's session.
type Game struct {
	state *State
	sim   config.Simulation // sized to the current screen
	base  config.Simulation // as configured
	rt    core.RuntimeConfig
}

// New creates an idle game using the given parameters.
func New(sim config.Simulation) *Game {
	return &Game{
		state: NewState(0, sim),
		sim:   sim,
		base:  sim,
		rt:    core.DefaultConfig(),
	}
}

// ID returns the identifier used for stored rounds.
func (g *Game) ID() string {
	return "buzzy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Buzzy Bird"
}

// Reset starts a new round sized to the runtime screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.sim = g.fit(g.base)
	g.state.Reset(rt.Seed, g.sim)
}

// Quit abandons the current round.
func (g *Game) Quit() {
	g.state.Stop(g.sim)
}

// Resize adapts the playfield to a new screen size without restarting.
// Pipes already on screen keep their positions.
func (g *Game) Resize(screenW, screenH int) {
	g.rt.ScreenW = screenW
	g.rt.ScreenH = screenH
	g.sim = g.fit(g.base)
}

// SetSimulation replaces the parameters mid-round. The break counter is not
// adjusted, so a lowered threshold may start a break right away.
func (g *Game) SetSimulation(sim config.Simulation) {
	g.base = sim
	g.sim = g.fit(sim)
}

// Simulation returns the parameters in effect, sized to the screen.
func (g *Game) Simulation() config.Simulation {
	return g.sim
}

func (g *Game) fit(sim config.Simulation) config.Simulation {
	if w, h, ok := g.rt.Playfield(); ok {
		return sim.WithPlayfield(w, h)
	}
	return sim
}

// Step advances the round by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.state.Status == StatusRunning {
		g.state.Paused = !g.state.Paused
	}

	out := Tick(g.state, Input{Now: in.Now, Pitch: in.Pitch}, g.sim)
	return core.StepResult{State: g.State(), Events: out.Events}
}

// State returns the round status for the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status == StatusGameOver,
		Paused:   g.state.Paused,
		Resting:  g.state.Rest.Phase == PhaseOnBreak,
		Running:  g.state.Status == StatusRunning,
	}
}
