// Package worker provide a fixed-size pool running submitted jobs.
package worker

//
// pool.go
// Copyright (C) 2026 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"sync"
)

// Pool run jobs on a fixed number of goroutines.
type Pool struct {
	jobs chan func()
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewPool(workers int) *Pool {
	workers = max(workers, 1)
	pool := &Pool{jobs: make(chan func())}

	for range workers {
		pool.wg.Go(pool.run)
	}

	return pool
}

func (p *Pool) run() {
	for job := range p.jobs {
		job()
	}
}

// Submit hand `job` to a worker; block until one is free.
// Return false when the pool is already shut down.
func (p *Pool) Submit(job func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}

	p.jobs <- job

	return true
}

// Shutdown stop accepting jobs and wait for running ones to finish.
// Safe to call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()

	if !p.closed {
		p.closed = true
		close(p.jobs)
	}

	p.mu.Unlock()
	p.wg.Wait()
}
