package adapt

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethanthoma/effect/pkg/effect"
)

var ErrSourceClosed = errors.New("adapt: source channel closed before delivering a value")

// FromChan absorbs the next value received from ch. The receive starts at
// perform time on its own goroutine; a source that never sends (or closes
// first) leaves the effect unsettled.
func FromChan[T any, E any](ch <-chan T) effect.Effect[T, E] {
	return effect.Unbox[<-chan T, T, E](ch, func(source <-chan T, resolve func(v T)) {
		go func() {
			if v, ok := <-source; ok {
				resolve(v)
			}
		}()
	})
}

// Receive is the context-aware FromChan: context cancellation and a closed
// source settle the early-return channel with the reason instead of
// leaving the effect unsettled.
func Receive[T any](ctx context.Context, ch <-chan T) effect.Effect[T, error] {
	return effect.UnboxResult[<-chan T, T, error](ch,
		func(source <-chan T, resolve func(r effect.Result[T, error])) {
			go func() {
				select {
				case v, ok := <-source:
					if !ok {
						resolve(effect.Err[T, error](ErrSourceClosed))
						return
					}
					resolve(effect.Ok[T, error](v))
				case <-ctx.Done():
					resolve(effect.Err[T, error](ctx.Err()))
				}
			}()
		})
}

// Call defers a blocking call onto its own goroutine, started at perform
// time. The call owns cancellation: it receives ctx and whatever
// (value, error) it returns is routed onto the channels.
func Call[T any](ctx context.Context, call func(ctx context.Context) (T, error)) effect.Effect[T, error] {
	return effect.UnboxResult[func(context.Context) (T, error), T, error](call,
		func(fn func(context.Context) (T, error), resolve func(r effect.Result[T, error])) {
			go func() {
				v, err := fn(ctx)
				if err != nil {
					resolve(effect.Err[T, error](err))
					return
				}
				resolve(effect.Ok[T, error](v))
			}()
		})
}

// After settles with value once d has elapsed, counted from perform time.
func After[T any, E any](d time.Duration, value T) effect.Effect[T, E] {
	return effect.Unbox[time.Duration, T, E](d, func(delay time.Duration, resolve func(v T)) {
		time.AfterFunc(delay, func() {
			resolve(value)
		})
	})
}

// ToChan performs e and exposes its settled outcomes as a channel, closed
// once every fragment has settled. The channel is buffered (one slot per
// fragment unless WithBufferOptions overrides it) so synchronous fragments
// settle without a ready receiver. A fragment whose source never resolves
// keeps the channel open; bound the read side with the context.
func ToChan[S any, E any](ctx context.Context, e effect.Effect[S, E]) <-chan effect.Result[S, E] {
	out := make(chan effect.Result[S, E], GetBufferSize(ctx, e.Size()))

	if e.IsEmpty() {
		close(out)
		return out
	}

	var pending atomic.Int64
	pending.Store(int64(e.Size()))

	effect.Perform(e, func(r effect.Result[S, E]) {
		select {
		case out <- r:
		case <-ctx.Done():
			return
		}

		if pending.Add(-1) == 0 {
			close(out)
		}
	})

	return out
}

// Collect drains ToChan until it closes or the context ends, returning the
// outcomes gathered so far.
func Collect[S any, E any](ctx context.Context, e effect.Effect[S, E]) []effect.Result[S, E] {
	out := ToChan(ctx, e)

	res := make([]effect.Result[S, E], 0, e.Size())
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()
		for {
			select {
			case r, ok := <-out:
				if !ok {
					return
				}
				res = append(res, r)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return res
}
