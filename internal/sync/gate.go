package sync

import (
	"fmt"
	"sync"
)

// Gate provides best-effort, non-reentrant mutual exclusion keyed by
// (user, resource). Sync is triggered from several places (startup,
// reconnect, timer, explicit action); without the gate, overlapping runs
// could double-push a dirty record or race on cursor advancement.
//
// A second concurrent attempt gets false immediately; there is no queue.
// The caller treats that as a no-op for this tick and relies on the next
// periodic trigger.
type Gate struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{held: make(map[string]struct{})}
}

func gateKey(userID, resource string) string {
	return fmt.Sprintf("%s:%s", userID, resource)
}

// TryAcquire attempts to take the exclusive lock for (user, resource).
// Returns false without blocking if it is already held.
func (g *Gate) TryAcquire(userID, resource string) bool {
	key := gateKey(userID, resource)

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return false
	}
	g.held[key] = struct{}{}
	return true
}

// Release frees the lock for (user, resource). Releasing a lock that is
// not held is a no-op.
func (g *Gate) Release(userID, resource string) {
	key := gateKey(userID, resource)

	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.held, key)
}
