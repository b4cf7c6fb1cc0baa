package leaderboard

import (
	"errors"
	"testing"
)

func TestRecordTimeKeepsBest(t *testing.T) {
	b := NewBoard()

	changed, err := b.RecordTime("alice", 10.0)
	if err != nil || !changed {
		t.Fatalf("first RecordTime = %v, %v; expected true, nil", changed, err)
	}

	// Non-improving replay leaves the best untouched
	changed, _ = b.RecordTime("alice", 12.0)
	if changed {
		t.Error("slower time should not replace the best")
	}
	changed, _ = b.RecordTime("alice", 10.0)
	if changed {
		t.Error("equal time should not replace the best")
	}
	if best, _ := b.Best("alice"); best != 10.0 {
		t.Errorf("best = %v, expected 10.0", best)
	}

	changed, _ = b.RecordTime("alice", 8.5)
	if !changed {
		t.Error("faster time should replace the best")
	}
	if best, _ := b.Best("alice"); best != 8.5 {
		t.Errorf("best = %v, expected 8.5", best)
	}
}

func TestRecordTimeEmptyPlayer(t *testing.T) {
	b := NewBoard()
	if _, err := b.RecordTime("   ", 3); !errors.Is(err, ErrEmptyPlayer) {
		t.Errorf("error = %v, expected ErrEmptyPlayer", err)
	}
}

func TestRankingsOrderAndTies(t *testing.T) {
	b := NewBoard()
	b.RecordTime("carol", 30)
	b.RecordTime("alice", 20)
	b.RecordTime("bob", 30)
	b.RecordTime("dave", 5)

	entries, err := b.Rankings()
	if err != nil {
		t.Fatalf("Rankings failed: %v", err)
	}

	expected := []string{"dave", "alice", "carol", "bob"}
	if len(entries) != len(expected) {
		t.Fatalf("got %d entries, expected %d", len(entries), len(expected))
	}
	for i, name := range expected {
		if entries[i].Player != name {
			t.Errorf("rank %d = %s, expected %s", i+1, entries[i].Player, name)
		}
	}

	if Rank(entries, "carol") != 3 || Rank(entries, "nobody") != 0 {
		t.Error("Rank lookup mismatch")
	}
}

func TestRecentRoundsNewestFirst(t *testing.T) {
	b := NewBoard()
	for i, w := range []string{"HELLO", "WORLD", "LEMON"} {
		b.SaveRound(Round{Player: "p", Plaintext: w, Seconds: float64(i)})
	}

	rounds, _ := b.RecentRounds(2)
	if len(rounds) != 2 {
		t.Fatalf("got %d rounds, expected 2", len(rounds))
	}
	if rounds[0].Plaintext != "LEMON" || rounds[1].Plaintext != "WORLD" {
		t.Errorf("rounds = %v, expected LEMON then WORLD", rounds)
	}

	all, _ := b.RecentRounds(0)
	if len(all) != 3 {
		t.Errorf("RecentRounds(0) returned %d rounds, expected 3", len(all))
	}
}
