// Package worker provides the small concurrency utilities behind the
// dataset fetcher: a bounded worker pool and a per-host rate limiter.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// resultCollector accumulates results as workers finish. Appending under a
// mutex instead of sending on a channel means a worker can always publish
// its result, so Submit never deadlocks against an undrained result
// buffer regardless of how many jobs are queued.
type resultCollector struct {
	mu      sync.Mutex
	results []Result
}

func (c *resultCollector) add(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

func (c *resultCollector) all() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Pool executes jobs on a fixed number of worker goroutines. The job queue
// is bounded, so Submit exerts backpressure; completed results are
// collected unbounded and returned by Wait.
type Pool struct {
	workers   int
	jobs      chan Job
	collected resultCollector
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given worker count.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.collected.add(job.Execute(p.ctx))
		}
	}
}

// Submit queues a job, blocking while the queue is full. Submissions after
// Shutdown are dropped.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Wait closes the queue, waits for all submitted jobs and returns their
// results in completion order.
func (p *Pool) Wait() []Result {
	p.closeJobs()
	p.wg.Wait()
	return p.collected.all()
}

// Shutdown stops the pool without draining queued jobs.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool) closeJobs() {
	p.closeOnce.Do(func() { close(p.jobs) })
}
