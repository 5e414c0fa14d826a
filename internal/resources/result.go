package resources

import (
	"context"
	"fmt"
	"sync"
)

// Status is the state of an asynchronous fetch.
type Status int

const (
	Pending Status = iota
	Resolved
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the observable outcome of a Task.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Task runs one fetch in the background.
type Task[T any] struct {
	done   chan struct{}
	once   sync.Once
	result Result[T]
}

// Go starts fn in its own goroutine and returns immediately.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		v, err := fn(ctx)
		t.finish(v, err)
	}()
	return t
}

func (t *Task[T]) finish(v T, err error) {
	t.once.Do(func() {
		if err != nil {
			t.result = Result[T]{Status: Failed, Err: err}
		} else {
			t.result = Result[T]{Status: Resolved, Value: v}
		}
		close(t.done)
	})
}

// Poll returns the current result without blocking.
func (t *Task[T]) Poll() Result[T] {
	select {
	case <-t.done:
		return t.result
	default:
		return Result[T]{Status: Pending}
	}
}

// Await blocks until the task finishes or ctx is done. A cancelled wait
// reports Failed with the context error; the task itself keeps running.
func (t *Task[T]) Await(ctx context.Context) Result[T] {
	select {
	case <-t.done:
		return t.result
	case <-ctx.Done():
		return Result[T]{Status: Failed, Err: ctx.Err()}
	}
}
