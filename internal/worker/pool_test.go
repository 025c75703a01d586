package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type stubResult struct {
	err error
}

func (r *stubResult) GetError() error {
	return r.err
}

type stubJob struct {
	shouldErr bool
	executed  *int32
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.shouldErr {
		return &stubResult{err: errors.New("job error")}
	}
	return &stubResult{}
}

func TestNewPool_WorkerFloor(t *testing.T) {
	if p := NewPool(5); p.workers != 5 {
		t.Errorf("expected 5 workers, got %d", p.workers)
	}
	if p := NewPool(0); p.workers != 1 {
		t.Errorf("expected 1 worker for 0 input, got %d", p.workers)
	}
	if p := NewPool(-3); p.workers != 1 {
		t.Errorf("expected 1 worker for negative input, got %d", p.workers)
	}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	var executed int32
	count := 12
	jobs := make([]Job, count)
	for i := range jobs {
		jobs[i] = &stubJob{executed: &executed}
	}

	results := NewPool(3).Run(context.Background(), jobs)

	if len(results) != count {
		t.Errorf("expected %d results, got %d", count, len(results))
	}
	if atomic.LoadInt32(&executed) != int32(count) {
		t.Errorf("expected %d executions, got %d", count, executed)
	}
}

func TestPool_ManyMoreJobsThanWorkers(t *testing.T) {
	// Far more jobs than a single worker can hold in flight; the run
	// must complete without stalling between submission and collection.
	var executed int32
	count := 50
	jobs := make([]Job, count)
	for i := range jobs {
		jobs[i] = &stubJob{executed: &executed}
	}

	done := make(chan []Result, 1)
	go func() {
		done <- NewPool(1).Run(context.Background(), jobs)
	}()

	select {
	case results := <-done:
		if len(results) != count {
			t.Errorf("expected %d results, got %d", count, len(results))
		}
		if atomic.LoadInt32(&executed) != int32(count) {
			t.Errorf("expected %d executions, got %d", count, executed)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run stalled: %d jobs with 1 worker never finished", count)
	}
}

func TestPool_ErrorsSurfacePerJob(t *testing.T) {
	results := NewPool(2).Run(context.Background(), []Job{
		&stubJob{shouldErr: true},
		&stubJob{},
	})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	failures := 0
	for _, res := range results {
		if res.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failed job, got %d", failures)
	}
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Execute(ctx context.Context) Result {
	if j.started != nil {
		close(j.started)
	}
	<-ctx.Done()
	return &stubResult{err: ctx.Err()}
}

func TestPool_CancelUnblocksRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	jobs := []Job{
		&blockingJob{started: started},
		&blockingJob{},
		&blockingJob{},
		&blockingJob{},
	}

	done := make(chan []Result, 1)
	go func() {
		done <- NewPool(1).Run(ctx, jobs)
	}()

	<-started
	cancel()

	select {
	case results := <-done:
		if len(results) == 0 {
			t.Fatal("expected at least the in-flight job's result")
		}
		for _, result := range results {
			if result.GetError() == nil {
				t.Error("expected every job to see the canceled context")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPool_EmptyJobList(t *testing.T) {
	if results := NewPool(2).Run(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
