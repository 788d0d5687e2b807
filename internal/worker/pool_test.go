package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	id      int
	fail    bool
	counter *atomic.Int64
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error { return r.err }

func (j *testJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &testResult{id: j.id, err: errors.New("boom")}
	}
	return &testResult{id: j.id}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(4)
	pool.Start()

	var counter atomic.Int64
	for i := 0; i < 7; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}
	results := pool.Wait()

	if len(results) != 7 {
		t.Fatalf("got %d results, want 7", len(results))
	}
	if counter.Load() != 7 {
		t.Errorf("executed %d jobs, want 7", counter.Load())
	}
}

func TestPool_ManyMoreJobsThanWorkers(t *testing.T) {
	// Far more jobs than the queue buffers. Submission must keep making
	// progress even though nothing reads results until Wait.
	const jobs = 41
	pool := NewPool(4)
	pool.Start()

	var counter atomic.Int64
	done := make(chan []Result, 1)
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(&testJob{id: i, counter: &counter})
		}
		done <- pool.Wait()
	}()

	select {
	case results := <-done:
		if len(results) != jobs {
			t.Fatalf("got %d results, want %d", len(results), jobs)
		}
		if counter.Load() != jobs {
			t.Errorf("executed %d jobs, want %d", counter.Load(), jobs)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("pool hung: executed %d of %d jobs", counter.Load(), jobs)
	}
}

func TestPool_ReportsJobErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter atomic.Int64
	pool.Submit(&testJob{id: 0, counter: &counter})
	pool.Submit(&testJob{id: 1, fail: true, counter: &counter})
	results := pool.Wait()

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("got %d failed results, want 1", failed)
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	pool := NewPool(0)
	if pool.workers != 1 {
		t.Errorf("workers = %d, want 1", pool.workers)
	}
}
