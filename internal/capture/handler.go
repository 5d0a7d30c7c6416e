package capture

import (
	"context"
	"sync"
)

// Handler receives the frames Each and EachTyped decode. Bind is called once
// per stream and returns:
//   - deliver, called on the reading goroutine for every frame. A non-nil
//     error stops the stream and is returned to the caller;
//   - done, called once the stream stops for any reason (may be nil);
//   - the channel frames arrive on, or nil when delivery is a direct call.
type Handler[T any] interface {
	Bind() (deliver func(ctx context.Context, v T) error, done func(), out <-chan T)
}

// Callback hands each frame to a function on the reading goroutine. A slow
// function slows the reader; cancellation is noticed between frames.
type Callback[T any] struct {
	fn   func(T)
	done func()
}

func (c *Callback[T]) Bind() (func(context.Context, T) error, func(), <-chan T) {
	deliver := func(_ context.Context, v T) error {
		c.fn(v)
		return nil
	}
	return deliver, c.done, nil
}

// NewCallback creates a callback handler. done may be nil.
func NewCallback[T any](fn func(T), done func()) *Callback[T] {
	return &Callback[T]{fn: fn, done: done}
}

// Queue buffers frames on a channel for another goroutine to consume, so a
// whole capture can be replayed without losing frames. When the buffer is
// full the reader waits for the consumer, or gives up with the context's
// error once it is done. The channel is closed when the stream stops.
type Queue[T any] struct {
	ch chan T
}

func (q *Queue[T]) Bind() (func(context.Context, T) error, func(), <-chan T) {
	deliver := func(ctx context.Context, v T) error {
		select {
		case q.ch <- v:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return deliver, func() { close(q.ch) }, q.ch
}

// NewQueue creates a queue with the given buffer size. Zero hands each frame
// over only when the consumer takes it.
func NewQueue[T any](size int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, size)}
}

// Ring keeps only the most recent frames, e.g. the latest hand poses for a
// display that samples the stream. The reader never waits: when the channel
// is full the oldest buffered frame is dropped. Dropped counts how many.
type Ring[T any] struct {
	ch      chan T
	mu      sync.Mutex
	dropped int
}

func (r *Ring[T]) Bind() (func(context.Context, T) error, func(), <-chan T) {
	deliver := func(_ context.Context, v T) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		for {
			select {
			case r.ch <- v:
				return nil
			default:
			}
			// a consumer may have drained the slot in between
			select {
			case <-r.ch:
				r.dropped++
			default:
			}
		}
	}
	return deliver, func() { close(r.ch) }, r.ch
}

// Dropped returns the number of frames evicted so far.
func (r *Ring[T]) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

// NewRing creates a ring holding up to capacity frames. It panics unless
// capacity > 0.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("capture: ring capacity must be > 0")
	}
	return &Ring[T]{ch: make(chan T, capacity)}
}
