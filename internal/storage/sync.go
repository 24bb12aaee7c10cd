package storage

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ErrNoStore is reported by a Syncer that has nowhere to record rounds.
var ErrNoStore = errors.New("storage: no store configured")

// Recorder persists finished rounds. *Store implements it.
type Recorder interface {
	RecordRound(r Round) (RecordResult, error)
}

// Result is delivered once per submitted round.
type Result struct {
	RecordResult
	Err error
}

// Syncer records rounds in the background so the game loop never waits on
// the database. Hosts call Wait before exiting.
type Syncer struct {
	rec     Recorder
	logger  *log.Logger
	wg      sync.WaitGroup
	pending atomic.Int64
}

// NewSyncer creates a syncer. rec may be nil when storage is unavailable;
// submissions then fail with ErrNoStore.
func NewSyncer(rec Recorder, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Syncer{rec: rec, logger: logger}
}

// Submit records r in the background. The returned channel receives exactly
// one Result and is never closed.
func (s *Syncer) Submit(r Round) <-chan Result {
	out := make(chan Result, 1)
	if s.rec == nil {
		out <- Result{Err: ErrNoStore}
		return out
	}

	s.wg.Add(1)
	s.pending.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.pending.Add(-1)

		res, err := s.rec.RecordRound(r)
		if err != nil {
			s.logger.Error("round sync failed", "player", r.Player, "score", r.Score, "error", err)
		} else {
			s.logger.Debug("round synced",
				"player", res.Player.Name,
				"score", r.Score,
				"points", res.Player.Points,
				"new_high", res.NewHigh,
			)
		}
		out <- Result{RecordResult: res, Err: err}
	}()
	return out
}

// Pending returns the number of rounds still being recorded.
func (s *Syncer) Pending() int {
	return int(s.pending.Load())
}

// Wait blocks until every submitted round is recorded or the timeout
// elapses, and reports whether everything finished. A non-positive timeout
// waits indefinitely.
func (s *Syncer) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	if timeout <= 0 {
		<-done
		return true
	}

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		s.logger.Warn("gave up waiting for round sync", "pending", s.Pending())
		return false
	}
}
