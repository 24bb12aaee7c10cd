package storage

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type blockingRecorder struct {
	release chan struct{}
	mu      sync.Mutex
	got     []Round
}

func (b *blockingRecorder) RecordRound(r Round) (RecordResult, error) {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, r)
	return RecordResult{Player: Player{Name: r.Player, HighScore: r.Score}}, nil
}

func TestSyncerSubmit(t *testing.T) {
	store := openTestStore(t)
	s := NewSyncer(store, nil)

	res := <-s.Submit(Round{Player: "ana", Score: 6})
	if res.Err != nil {
		t.Fatalf("Submit() failed: %v", res.Err)
	}
	if !res.NewHigh || res.Player.HighScore != 6 {
		t.Errorf("unexpected result %+v", res)
	}

	if !s.Wait(time.Second) {
		t.Error("Wait() should succeed once everything is recorded")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSyncerWaitTimeout(t *testing.T) {
	rec := &blockingRecorder{release: make(chan struct{})}
	s := NewSyncer(rec, nil)

	first := s.Submit(Round{Player: "ana", Score: 1})
	second := s.Submit(Round{Player: "ana", Score: 2})

	if s.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2", s.Pending())
	}
	if s.Wait(20 * time.Millisecond) {
		t.Error("Wait() should time out while rounds are in flight")
	}

	close(rec.release)
	if !s.Wait(time.Second) {
		t.Fatal("Wait() should succeed after release")
	}

	for _, ch := range []<-chan Result{first, second} {
		if res := <-ch; res.Err != nil {
			t.Errorf("unexpected error %v", res.Err)
		}
	}
	if len(rec.got) != 2 {
		t.Errorf("recorded %d rounds, expected 2", len(rec.got))
	}
}

func TestSyncerWithoutStore(t *testing.T) {
	s := NewSyncer(nil, nil)

	res := <-s.Submit(Round{Player: "ana", Score: 1})
	if !errors.Is(res.Err, ErrNoStore) {
		t.Errorf("error = %v, expected ErrNoStore", res.Err)
	}
	if !s.Wait(0) {
		t.Error("Wait() with nothing pending should return immediately")
	}
}
