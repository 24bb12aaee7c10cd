package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again without error.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store.Close()
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRecordRoundProfile(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score      int
		wantPoints int64
		wantHigh   int
		wantRounds int
		newHigh    bool
	}{
		{score: 5, wantPoints: 5, wantHigh: 5, wantRounds: 1, newHigh: true},
		{score: 3, wantPoints: 8, wantHigh: 5, wantRounds: 2, newHigh: false},
		{score: 5, wantPoints: 13, wantHigh: 5, wantRounds: 3, newHigh: false},
		{score: 9, wantPoints: 22, wantHigh: 9, wantRounds: 4, newHigh: true},
		{score: 0, wantPoints: 22, wantHigh: 9, wantRounds: 5, newHigh: false},
	}

	prevHigh := 0
	for i, tt := range tests {
		res, err := store.RecordRound(Round{Player: "ana", Score: tt.score, PipeSpeed: 2.75, PipesPerBreak: 5})
		if err != nil {
			t.Fatalf("round %d: RecordRound() failed: %v", i, err)
		}
		if res.RoundID == 0 {
			t.Errorf("round %d: expected a round ID", i)
		}
		if res.Player.Points != tt.wantPoints {
			t.Errorf("round %d: Points = %d, expected %d", i, res.Player.Points, tt.wantPoints)
		}
		if res.Player.HighScore != tt.wantHigh {
			t.Errorf("round %d: HighScore = %d, expected %d", i, res.Player.HighScore, tt.wantHigh)
		}
		if res.Player.Rounds != tt.wantRounds {
			t.Errorf("round %d: Rounds = %d, expected %d", i, res.Player.Rounds, tt.wantRounds)
		}
		if res.NewHigh != tt.newHigh {
			t.Errorf("round %d: NewHigh = %v, expected %v", i, res.NewHigh, tt.newHigh)
		}
		if res.PreviousHigh != prevHigh {
			t.Errorf("round %d: PreviousHigh = %d, expected %d", i, res.PreviousHigh, prevHigh)
		}
		prevHigh = tt.wantHigh
	}
}

func TestRecordRoundValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordRound(Round{Player: "ana", Score: -1}); !errors.Is(err, ErrNegativeScore) {
		t.Errorf("negative score error = %v, expected ErrNegativeScore", err)
	}

	res, err := store.RecordRound(Round{Score: 2})
	if err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}
	if res.Player.Name != DefaultPlayer {
		t.Errorf("empty player recorded as %q, expected %q", res.Player.Name, DefaultPlayer)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Round{
		{Player: "ana", Score: 100},
		{Player: "ana", Score: 200},
		{Player: "bo", Score: 150},
		{Player: "ana", Score: 50},
	} {
		if _, err := store.RecordRound(r); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	scores, err := store.TopScores("ana", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 scores with limit, got %d", len(all))
	}
	if all[0].Score != 200 || all[1].Player != "bo" {
		t.Errorf("unexpected overall top scores: %v", all)
	}
}

func TestStoreLeaderboard(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Round{
		{Player: "ana", Score: 4},
		{Player: "ana", Score: 4},
		{Player: "bo", Score: 7},
		{Player: "cy", Score: 4},
	} {
		if _, err := store.RecordRound(r); err != nil {
			t.Fatalf("RecordRound() failed: %v", err)
		}
	}

	board, err := store.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	want := []string{"bo", "ana", "cy"} // ana and cy tie on high score; ana has more points
	if len(board) != len(want) {
		t.Fatalf("Expected %d players, got %d", len(want), len(board))
	}
	for i, name := range want {
		if board[i].Name != name {
			t.Errorf("board[%d] = %s, expected %s", i, board[i].Name, name)
		}
	}
}

func TestStorePlayerAndHighScore(t *testing.T) {
	store := openTestStore(t)

	p, err := store.Player("nobody")
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil profile for unknown player, got %+v", p)
	}

	high, err := store.HighScore("")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.RecordRound(Round{Player: "ana", Score: 3})
	store.RecordRound(Round{Player: "bo", Score: 8})

	p, err = store.Player("ana")
	if err != nil || p == nil {
		t.Fatalf("Player() = %v, %v", p, err)
	}
	if p.HighScore != 3 || p.Rounds != 1 {
		t.Errorf("unexpected profile %+v", p)
	}

	if high, _ := store.HighScore("bo"); high != 8 {
		t.Errorf("HighScore(bo) = %d, expected 8", high)
	}
	if high, _ := store.HighScore(""); high != 8 {
		t.Errorf("HighScore() = %d, expected 8", high)
	}
	if high, _ := store.HighScore("nobody"); high != 0 {
		t.Errorf("HighScore(nobody) = %d, expected 0", high)
	}
}

func TestStoreClearPlayer(t *testing.T) {
	store := openTestStore(t)

	store.RecordRound(Round{Player: "ana", Score: 1})
	store.RecordRound(Round{Player: "ana", Score: 2})
	store.RecordRound(Round{Player: "bo", Score: 3})

	if err := store.ClearPlayer("ana"); err != nil {
		t.Fatalf("ClearPlayer() failed: %v", err)
	}

	if scores, _ := store.TopScores("ana", 10); len(scores) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(scores))
	}
	if p, _ := store.Player("ana"); p != nil {
		t.Error("profile should be gone after clear")
	}
	if scores, _ := store.TopScores("bo", 10); len(scores) != 1 {
		t.Error("other players should not be affected")
	}
}
