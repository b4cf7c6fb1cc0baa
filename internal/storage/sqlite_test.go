package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordTimeKeepsMinimum(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		seconds  float64
		changed  bool
		expected float64
	}{
		{10.0, true, 10.0},
		{12.0, false, 10.0},
		{10.0, false, 10.0},
		{7.25, true, 7.25},
	}

	for _, tt := range tests {
		changed, err := store.RecordTime("alice", tt.seconds)
		if err != nil {
			t.Fatalf("RecordTime(%v) failed: %v", tt.seconds, err)
		}
		if changed != tt.changed {
			t.Errorf("RecordTime(%v) changed = %v, expected %v", tt.seconds, changed, tt.changed)
		}

		entries, _ := store.Rankings()
		if len(entries) != 1 || entries[0].Seconds != tt.expected {
			t.Errorf("after %v: rankings = %v, expected best %v", tt.seconds, entries, tt.expected)
		}
	}
}

func TestRecordTimeRejectsEmptyPlayer(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordTime("", 1); !errors.Is(err, leaderboard.ErrEmptyPlayer) {
		t.Errorf("error = %v, expected ErrEmptyPlayer", err)
	}
}

func TestRankingsStableTies(t *testing.T) {
	store := openTestStore(t)
	store.RecordTime("carol", 30)
	store.RecordTime("alice", 20)
	store.RecordTime("bob", 30)
	// An improved time keeps its first row id
	store.RecordTime("carol", 25)

	entries, err := store.Rankings()
	if err != nil {
		t.Fatalf("Rankings() failed: %v", err)
	}

	expected := []string{"alice", "carol", "bob"}
	for i, name := range expected {
		if entries[i].Player != name {
			t.Errorf("rank %d = %s, expected %s", i+1, entries[i].Player, name)
		}
	}
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.RecordTime("alice", 5)
	entries, _ := b.Rankings()
	if len(entries) != 0 {
		t.Errorf("second store sees %d entries, expected 0", len(entries))
	}
}

func TestRoundsHistory(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []string{"HELLO", "WORLD", "MANGO"} {
		err := store.SaveRound(leaderboard.Round{
			Player: "alice", Difficulty: "easy", Seconds: 42,
			Plaintext: w, N: 143, E: 7, D: 103, Decrypted: true,
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds(2)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, expected 2", len(rounds))
	}
	if rounds[0].Plaintext != "MANGO" || rounds[1].Plaintext != "WORLD" {
		t.Errorf("unexpected order: %s, %s", rounds[0].Plaintext, rounds[1].Plaintext)
	}
	if rounds[0].N != 143 || rounds[0].D != 103 || !rounds[0].Decrypted {
		t.Errorf("round fields not preserved: %+v", rounds[0])
	}
}

// Both History backends follow the same rules.
func TestHistoryBackendsAgree(t *testing.T) {
	finished := time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)

	backends := []struct {
		name  string
		store leaderboard.Store
	}{
		{"board", leaderboard.NewBoard()},
		{"sqlite", openTestStore(t)},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			for i := range 12 {
				r := leaderboard.Round{Player: "alice", Difficulty: "easy", Seconds: float64(i), Plaintext: "HELLO"}
				if i == 11 {
					r.FinishedAt = finished
				}
				if err := b.store.SaveRound(r); err != nil {
					t.Fatalf("SaveRound() failed: %v", err)
				}
			}

			for _, limit := range []int{0, -1} {
				rounds, err := b.store.RecentRounds(limit)
				if err != nil {
					t.Fatalf("RecentRounds(%d) failed: %v", limit, err)
				}
				if len(rounds) != 12 {
					t.Errorf("RecentRounds(%d) returned %d rounds, expected all 12", limit, len(rounds))
				}
			}

			rounds, _ := b.store.RecentRounds(2)
			if !rounds[0].FinishedAt.Equal(finished) {
				t.Errorf("FinishedAt = %v, expected %v", rounds[0].FinishedAt, finished)
			}
			if rounds[1].FinishedAt.IsZero() {
				t.Error("zero FinishedAt was not stamped")
			}
		})
	}
}
