// Copyright 2025 The go-sortkit Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent jobs on a fixed set of goroutines.
// cmd/sortkit uses it to spread randomized property trials across CPUs; the
// sorting packages themselves never start goroutines.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	err := pool.ForEach(trials, func(i int) error {
//	    return runTrial(i)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused by every ForEach call until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers. If numWorkers <= 0, uses
// GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first. Calling Close more
// than once is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ForEach calls fn for every index in [0, n), handing indices out one at a
// time so uneven jobs balance across workers. It blocks until all work is
// done or abandoned.
//
// After the first failure no new indices are started, and ForEach returns
// that error annotated with its index. A closed pool runs fn sequentially on
// the calling goroutine.
func (p *Pool) ForEach(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		for i := range n {
			if err := fn(i); err != nil {
				return errors.Wrapf(err, "job %d", i)
			}
		}
		return nil
	}

	var (
		nextIdx  atomic.Int64
		failed   atomic.Bool
		errOnce  sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	wg.Add(workers)

	for range workers {
		p.workC <- workItem{
			fn: func() {
				for !failed.Load() {
					idx := int(nextIdx.Add(1)) - 1
					if idx >= n {
						return
					}
					if err := fn(idx); err != nil {
						errOnce.Do(func() {
							firstErr = errors.Wrapf(err, "job %d", idx)
							failed.Store(true)
						})
						return
					}
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
	return firstErr
}
