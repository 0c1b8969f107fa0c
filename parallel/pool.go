// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool hands jobs to its workers. With a single worker, jobs run inline in
// the goroutine calling Do.
type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()
}

// Start launches numWorkers workers, or GOMAXPROCS workers if numWorkers is
// less than one.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Do schedules f. It blocks while all workers are busy and the queue is
// full. Do must not be called after Wait.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs and returns once every scheduled job has
// finished. It is safe to call more than once.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
