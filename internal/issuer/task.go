package issuer

import (
	"context"
	"sync"
)

// Task is the observable outcome of one asynchronous issuance pipeline.
type Task struct {
	Code string

	done chan struct{}
	once sync.Once
	err  error
}

func newTask(code string) *Task {
	return &Task{Code: code, done: make(chan struct{})}
}

func (t *Task) finish(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done closes when the pipeline has finished, successfully or not.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Finished reports completion without blocking.
func (t *Task) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err blocks until the pipeline finishes and returns its terminal error, or
// the context error if the wait is abandoned first.
func (t *Task) Err(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BulkTask aggregates the outcomes of a bulk issuance. Counts are readable
// while batches are still in flight; Done closes only after the last batch.
type BulkTask struct {
	Requested int

	mu        sync.Mutex
	succeeded int
	failed    int
	failures  map[string]string

	done chan struct{}
}

func newBulkTask(requested int) *BulkTask {
	return &BulkTask{
		Requested: requested,
		failures:  make(map[string]string),
		done:      make(chan struct{}),
	}
}

func (b *BulkTask) record(code string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.succeeded++
		return
	}
	b.failed++
	if code != "" {
		b.failures[code] = err.Error()
	}
}

func (b *BulkTask) close() {
	close(b.done)
}

func (b *BulkTask) Done() <-chan struct{} {
	return b.done
}

// Progress returns the running success and failure counts.
func (b *BulkTask) Progress() (succeeded int, failed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.succeeded, b.failed
}

// Failures returns the per-certificate error messages recorded so far.
func (b *BulkTask) Failures() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]string, len(b.failures))
	for code, msg := range b.failures {
		out[code] = msg
	}
	return out
}

// Wait blocks until every batch has been processed, then returns the final
// counts.
func (b *BulkTask) Wait(ctx context.Context) (succeeded int, failed int, err error) {
	select {
	case <-b.done:
		succeeded, failed = b.Progress()
		return succeeded, failed, nil
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	}
}
