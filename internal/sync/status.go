package sync

// Status is the observable per-resource sync state the UI subscribes to.
// The engine never pushes UI state directly; it only publishes this enum.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSyncing   Status = "syncing"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Listener receives status transitions for a resource.
type Listener func(resource string, status Status)

// Status returns the current status for a resource, StatusIdle before the
// first run.
func (s *service) Status(resource string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.statuses[resource]; ok {
		return st
	}
	return StatusIdle
}

// Subscribe registers a listener for status transitions.
func (s *service) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// setStatus records a transition and notifies listeners outside the lock.
func (s *service) setStatus(resource string, status Status) {
	s.mu.Lock()
	s.statuses[resource] = status
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(resource, status)
	}
}
