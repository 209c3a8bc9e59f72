package game

import (
	"sync"

	"github.com/mwhite/phraseparty/internal/model"
)

// gameLocks serializes lifecycle operations per game id. Lifecycle
// operations read-then-write non-atomically (membership checks, leader
// assignment, cursor resets), so each game allows at most one operation at a
// time; operations on different games never contend.
type gameLocks struct {
	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[model.GameID]*sync.Mutex),
	}
}

// get returns the mutex for a game id, creating it on first use
func (l *gameLocks) get(id model.GameID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
