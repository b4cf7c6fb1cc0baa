// Package leaderboard tracks each player's best (lowest) round time.
//
// Entries are only ever inserted or improved; there is no deletion.
package leaderboard

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrEmptyPlayer is returned when recording a time for a blank name.
var ErrEmptyPlayer = errors.New("leaderboard: empty player name")

// Entry is one ranked player.
type Entry struct {
	Player  string
	Seconds float64
}

// Round is one completed pass through all four stages.
type Round struct {
	Player     string
	Difficulty string
	Seconds    float64
	Plaintext  string
	N, E, D    int
	Decrypted  bool // Whether decryption reproduced the plaintext
	FinishedAt time.Time
}

// Recorder keeps best times.
type Recorder interface {
	// RecordTime inserts the player or replaces their time if seconds is
	// strictly lower. It reports whether the stored best changed.
	RecordTime(player string, seconds float64) (bool, error)

	// Rankings returns all players ordered by ascending time. Ties keep the
	// order in which players were first recorded.
	Rankings() ([]Entry, error)
}

// History keeps completed rounds.
type History interface {
	// SaveRound appends r. A zero FinishedAt is stamped with the current time.
	SaveRound(r Round) error

	// RecentRounds returns up to limit rounds, newest first. A limit of zero
	// or less returns every round.
	RecentRounds(limit int) ([]Round, error)
}

// Store is what the game needs from a leaderboard backend.
type Store interface {
	Recorder
	History
}

// Board is an in-memory Store.
type Board struct {
	mu     sync.RWMutex
	best   map[string]float64
	order  []string // First-insertion order, used for stable ties
	rounds []Round
}

// NewBoard creates an empty in-memory leaderboard.
func NewBoard() *Board {
	return &Board{
		best: make(map[string]float64),
	}
}

// RecordTime implements Recorder.
func (b *Board) RecordTime(player string, seconds float64) (bool, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return false, ErrEmptyPlayer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.best[player]
	if !ok {
		b.order = append(b.order, player)
	} else if seconds >= current {
		return false, nil
	}
	b.best[player] = seconds
	return true, nil
}

// Best returns the stored time of a player.
func (b *Board) Best(player string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.best[player]
	return s, ok
}

// Rankings implements Recorder.
func (b *Board) Rankings() ([]Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := make([]Entry, 0, len(b.order))
	for _, p := range b.order {
		entries = append(entries, Entry{Player: p, Seconds: b.best[p]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Seconds < entries[j].Seconds
	})
	return entries, nil
}

// SaveRound implements History.
func (b *Board) SaveRound(r Round) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	b.rounds = append(b.rounds, r)
	return nil
}

// RecentRounds implements History.
func (b *Board) RecentRounds(limit int) ([]Round, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if limit <= 0 || limit > len(b.rounds) {
		limit = len(b.rounds)
	}
	out := make([]Round, 0, limit)
	for i := len(b.rounds) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, b.rounds[i])
	}
	return out, nil
}

// Rank returns the 1-based position of player in rankings, or 0 if absent.
func Rank(entries []Entry, player string) int {
	for i, e := range entries {
		if e.Player == player {
			return i + 1
		}
	}
	return 0
}

var _ Store = (*Board)(nil)
