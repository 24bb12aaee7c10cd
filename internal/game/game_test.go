package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// stepFrames advances g by n nominal frames starting at *now.
func stepFrames(g *Game, now *time.Duration, n int, pitch core.Pitch) core.StepResult {
	var res core.StepResult
	for range n {
		in := core.NewInputFrame()
		in.Now = *now
		in.Pitch = pitch
		res = g.Step(in)
		*now += g.Simulation().FrameDuration
	}
	return res
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 12345

	run := func() (core.GameState, []Pipe) {
		g := New(config.DefaultSimulation())
		g.Reset(cfg)
		var now time.Duration
		res := stepFrames(g, &now, 600, core.Hz(200))
		return res.State, g.Snapshot().Pipes
	}

	s1, p1 := run()
	s2, p2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestGameSizesPlayfieldFromScreen(t *testing.T) {
	g := New(config.DefaultSimulation())

	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	g.Reset(cfg)
	if sim := g.Simulation(); sim.Width != 1000 || sim.Height != 600 {
		t.Errorf("playfield = %vx%v, expected 1000x600", sim.Width, sim.Height)
	}

	g.Resize(60, 20)
	if sim := g.Simulation(); sim.Width != 600 || sim.Height != 400 {
		t.Errorf("after resize playfield = %vx%v, expected 600x400", sim.Width, sim.Height)
	}
	if !g.State().Running {
		t.Error("resize should not end the round")
	}

	cfg.CellW, cfg.CellH = 0, 0
	g.Reset(cfg)
	if sim := g.Simulation(); sim.Width != 800 || sim.Height != 480 {
		t.Errorf("without cell sizes playfield = %vx%v, expected configured 800x480", sim.Width, sim.Height)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New(config.DefaultSimulation())
	g.Reset(core.DefaultConfig())
	var now time.Duration
	stepFrames(g, &now, 10, core.NoSignal())

	in := core.NewInputFrame()
	in.Now = now
	in.Set(core.ActionPause)
	if res := g.Step(in); !res.State.Paused {
		t.Fatal("expected paused after ActionPause")
	}

	y := g.Snapshot().Flyer.Y
	stepFrames(g, &now, 30, core.NoSignal())
	if g.Snapshot().Flyer.Y != y {
		t.Error("flyer moved while paused")
	}

	in.Now = now
	if res := g.Step(in); res.State.Paused {
		t.Error("expected unpaused after second ActionPause")
	}
}

func TestGameSetSimulationKeepsPlayfield(t *testing.T) {
	g := New(config.DefaultSimulation())
	cfg := core.DefaultConfig()
	cfg.ScreenW = 120
	g.Reset(cfg)

	sim := config.DefaultSimulation()
	sim.PipesPerBreak = 9
	g.SetSimulation(sim)

	got := g.Simulation()
	if got.PipesPerBreak != 9 {
		t.Errorf("PipesPerBreak = %d, expected 9", got.PipesPerBreak)
	}
	if got.Width != 1200 {
		t.Errorf("Width = %v, expected the screen-sized 1200", got.Width)
	}
}

func TestGameQuit(t *testing.T) {
	g := New(config.DefaultSimulation())
	g.Reset(core.DefaultConfig())
	var now time.Duration
	stepFrames(g, &now, 200, core.Hz(200))

	g.Quit()
	st := g.State()
	if st.Running || st.GameOver || st.Score != 0 {
		t.Errorf("after Quit state = %+v, expected idle", st)
	}
	if len(g.Snapshot().Pipes) != 0 {
		t.Error("Quit should clear pipes")
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultSimulation())
	cfg := core.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	g.Render(screen)
	if !strings.Contains(screen.String(), "BUZZY BIRD") {
		t.Error("idle screen should show the title")
	}

	g.Reset(cfg)
	var now time.Duration
	stepFrames(g, &now, 200, core.Hz(200))
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, FlyerChar) || !strings.ContainsRune(out, FlyerBeakChar) {
		t.Error("flyer not drawn")
	}
	if !strings.ContainsRune(out, PipeChar) || !strings.ContainsRune(out, PipeCapChar) {
		t.Error("pipe not drawn")
	}

	in := core.NewInputFrame()
	in.Now = now
	in.Set(core.ActionPause)
	g.Step(in)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := New(config.DefaultSimulation())
	g.Reset(core.DefaultConfig())
	var now time.Duration

	for range 2000 {
		res := stepFrames(g, &now, 1, core.NoSignal())
		if res.State.GameOver {
			break
		}
	}
	if !g.State().GameOver {
		t.Fatal("a silent flyer should eventually hit a pipe")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
