package worker

//
// pool_test.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync/atomic"
	"testing"

	"gitlab.com/kabes/go-podcatcher/internal/assert"
)

func TestPoolRunsAllJobs(t *testing.T) {
	t.Parallel()

	pool := NewPool(4)

	var counter atomic.Int32

	for range 100 {
		ok := pool.Submit(func() { counter.Add(1) })
		assert.True(t, ok)
	}

	pool.Shutdown()
	assert.Equal(t, counter.Load(), 100)
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	t.Parallel()

	pool := NewPool(2)
	pool.Shutdown()

	assert.True(t, !pool.Submit(func() {}))

	// repeated shutdown is a no-op
	pool.Shutdown()
}

func TestPoolSingleWorker(t *testing.T) {
	t.Parallel()

	pool := NewPool(0)

	var counter atomic.Int32

	for range 10 {
		pool.Submit(func() { counter.Add(1) })
	}

	pool.Shutdown()
	assert.Equal(t, counter.Load(), 10)
}
