package chain

import (
	"github.com/ethanthoma/effect/pkg/effect"
)

// Chain wraps an effect.Effect to enable fluent composition
type Chain[S any, E any] struct {
	eff effect.Effect[S, E]
}

// Start creates a new chain from an existing effect
func Start[S any, E any](eff effect.Effect[S, E]) *Chain[S, E] {
	return &Chain[S, E]{
		eff: eff,
	}
}

// FromValue creates a new chain whose effect settles on the success channel
func FromValue[S any, E any](value S) *Chain[S, E] {
	return &Chain[S, E]{
		eff: effect.Continue[S, E](value),
	}
}

// FromEarly creates a new chain whose effect settles on the early-return channel
func FromEarly[S any, E any](early E) *Chain[S, E] {
	return &Chain[S, E]{
		eff: effect.Throw[S, E](early),
	}
}

// Effect returns the underlying effect
func (c *Chain[S, E]) Effect() effect.Effect[S, E] {
	return c.eff
}

// Then chains a function that returns a follow-up effect
func Then[In any, Out any, E any](c *Chain[In, E],
	onSuccess func(v In) effect.Effect[Out, E]) *Chain[Out, E] {
	return &Chain[Out, E]{
		eff: effect.Then(c.eff, onSuccess),
	}
}

// ThenTry chains a function that returns (Out, error)
func ThenTry[In any, Out any](c *Chain[In, error],
	onTryExecute func(v In) (Out, error)) *Chain[Out, error] {
	return &Chain[Out, error]{
		eff: effect.ThenTry(c.eff, onTryExecute),
	}
}

// Map chains a pure transformation of the success channel
func Map[In any, Out any, E any](c *Chain[In, E],
	onSuccess func(v In) Out) *Chain[Out, E] {
	return &Chain[Out, E]{
		eff: effect.Map(c.eff, onSuccess),
	}
}

// MapEarly chains a pure transformation of the early-return channel
func MapEarly[S any, E any, E2 any](c *Chain[S, E],
	onEarly func(early E) E2) *Chain[S, E2] {
	return &Chain[S, E2]{
		eff: effect.MapEarly(c.eff, onEarly),
	}
}

// Handle chains a catch over both channels, possibly retyping them
func Handle[In any, Out any, E any, E2 any](c *Chain[In, E],
	onSettle func(r effect.Result[In, E]) effect.Effect[Out, E2]) *Chain[Out, E2] {
	return &Chain[Out, E2]{
		eff: effect.Handle(c.eff, onSettle),
	}
}

// Ensure performs a side effect on success without changing settlement
func (c *Chain[S, E]) Ensure(onSuccess func(v S)) *Chain[S, E] {
	return &Chain[S, E]{
		eff: effect.Tee(c.eff, func(v S) {
			if onSuccess != nil {
				onSuccess(v)
			}
		}),
	}
}

// EnsureEarly performs a side effect on early return without changing settlement
func (c *Chain[S, E]) EnsureEarly(onEarly func(early E)) *Chain[S, E] {
	return &Chain[S, E]{
		eff: effect.TeeEarly(c.eff, func(early E) {
			if onEarly != nil {
				onEarly(early)
			}
		}),
	}
}

// Perform realizes the chained effect against a terminal handler
func (c *Chain[S, E]) Perform(handler func(r effect.Result[S, E])) {
	effect.Perform(c.eff, handler)
}

// FinallyHandlers groups the terminal callbacks used by Finally.
// A nil handler drops outcomes from its channel.
type FinallyHandlers[S any, E any, T any] struct {
	OnSuccess func(v S) T
	OnEarly   func(early E) T
}

// Finally performs the chain, collapsing every settled outcome through the
// matching handler and feeding the collapsed value to done.
func Finally[S any, E any, T any](c *Chain[S, E],
	handlers FinallyHandlers[S, E, T], done func(out T)) {

	c.Perform(func(r effect.Result[S, E]) {
		if r.IsOk() {
			if handlers.OnSuccess != nil {
				done(handlers.OnSuccess(r.Value()))
			}
			return
		}
		if handlers.OnEarly != nil {
			done(handlers.OnEarly(r.Early()))
		}
	})
}
