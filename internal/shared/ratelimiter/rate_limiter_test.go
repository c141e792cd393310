package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitIfNeeded_UnderLimit(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	start := time.Now()
	for i := 0; i < 5; i++ {
		rl.WaitIfNeeded()
	}

	assert.Less(t, time.Since(start), 100*time.Millisecond, "calls under the limit must not block")
}

func TestWaitIfNeeded_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, 200*time.Millisecond)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded()

	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond, "third call must wait for the window to reset")
}

func TestWaitIfNeeded_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 50*time.Millisecond)

	rl.WaitIfNeeded()
	time.Sleep(60 * time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()

	assert.Less(t, time.Since(start), 40*time.Millisecond, "a fresh window must not block")
}
