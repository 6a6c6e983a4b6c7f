package sync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateNonReentrant(t *testing.T) {
	gate := NewGate()

	assert.True(t, gate.TryAcquire("user-1", "quizzes"))
	assert.False(t, gate.TryAcquire("user-1", "quizzes"))

	gate.Release("user-1", "quizzes")
	assert.True(t, gate.TryAcquire("user-1", "quizzes"))
}

func TestGateIndependentKeys(t *testing.T) {
	gate := NewGate()

	assert.True(t, gate.TryAcquire("user-1", "quizzes"))
	assert.True(t, gate.TryAcquire("user-1", "results"))
	assert.True(t, gate.TryAcquire("user-2", "quizzes"))
}

func TestGateReleaseUnheldIsNoop(t *testing.T) {
	gate := NewGate()

	gate.Release("user-1", "quizzes")
	assert.True(t, gate.TryAcquire("user-1", "quizzes"))
}

func TestGateSingleWinnerUnderContention(t *testing.T) {
	gate := NewGate()

	const attempts = 32
	var wg sync.WaitGroup
	acquired := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acquired <- gate.TryAcquire("user-1", "quizzes")
		}()
	}
	wg.Wait()
	close(acquired)

	winners := 0
	for ok := range acquired {
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}
