package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/config"
	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Sampler yields the pitch reading for a frame timestamp.
type Sampler interface {
	Sample(now time.Duration) core.Pitch
}

// ReplayOptions controls a headless run.
type ReplayOptions struct {
	Seed     int64
	Duration time.Duration // stop after this much host time
	Frame    time.Duration // host frame interval; defaults to the nominal frame
	Jitter   float64       // 0..1, relative spread of frame intervals
}

// ReplayResult summarizes a headless run.
type ReplayResult struct {
	Score    int
	Ticks    int
	Elapsed  time.Duration
	GameOver bool
	Spawned  int
	Skipped  int
	Breaks   int
}

// Replay plays one round without a terminal, feeding the sampler's pitch
// at host frame timestamps. onEvent, when set, sees every event.
func Replay(sim config.Simulation, src Sampler, opts ReplayOptions, onEvent func(now time.Duration, e core.Event)) ReplayResult {
	frame := opts.Frame
	if frame <= 0 {
		frame = sim.FrameDuration
	}
	jitter := core.ClampF(opts.Jitter, 0, 1)
	rng := rand.New(rand.NewSource(opts.Seed ^ 0x5eed))

	st := NewState(opts.Seed, sim)
	st.Reset(opts.Seed, sim)

	var res ReplayResult
	var now time.Duration
	for now <= opts.Duration && st.Status == StatusRunning {
		out := Tick(st, Input{Now: now, Pitch: src.Sample(now)}, sim)
		res.Ticks++
		res.Elapsed = now

		for _, e := range out.Events {
			switch e.Kind {
			case core.EventSpawned:
				res.Spawned++
			case core.EventSkipped:
				res.Skipped++
			case core.EventBreakStarted:
				res.Breaks++
			}
			if onEvent != nil {
				onEvent(now, e)
			}
		}

		step := frame
		if jitter > 0 {
			step = time.Duration(float64(frame) * (1 + jitter*(2*rng.Float64()-1)))
		}
		now += step
	}

	res.Score = st.Score
	res.GameOver = st.Status == StatusGameOver
	return res
}
