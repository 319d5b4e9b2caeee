package ratelimiter

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i)
	}

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Greater(t, retry, time.Duration(0))
	assert.LessOrEqual(t, retry, time.Minute)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "clients are counted separately")
}

func TestFixedWindowResets(t *testing.T) {
	rl := NewFixedWindowLimiter(1, time.Minute)
	defer rl.Stop()

	current := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	ok, _ := rl.Allow("ip")
	assert.True(t, ok)
	ok, _ = rl.Allow("ip")
	assert.False(t, ok)

	current = current.Add(time.Minute)
	ok, _ = rl.Allow("ip")
	assert.True(t, ok)
}

func TestFixedWindowConcurrent(t *testing.T) {
	rl := NewFixedWindowLimiter(10, time.Minute)
	defer rl.Stop()

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("ip"); ok {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), allowed.Load())
}
