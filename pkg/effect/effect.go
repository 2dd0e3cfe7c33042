package effect

import (
	"time"

	"github.com/google/uuid"
)

// action is the pair of continuations a runner settles into: exactly one
// of the two slots fires, exactly once per runner.
type action[S, E any] struct {
	onContinue func(v S)
	onThrow    func(early E)
}

// runner executes one independent fragment of an effect against an action.
type runner[S, E any] func(act action[S, E])

// Effect is an immutable description of a deferred computation that, once
// performed, settles on exactly one of two channels: the success channel
// carrying S or the early-return channel carrying E. Building or combining
// effects does no work; runners execute only inside Perform or Pure.
type Effect[S, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	runners   []runner[S, E]
}

func newEffect[S, E any](runners []runner[S, E]) Effect[S, E] {
	return Effect[S, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		runners:   runners,
	}
}

// Continue lifts a plain value onto the success channel.
func Continue[S, E any](value S) Effect[S, E] {
	return newEffect([]runner[S, E]{func(act action[S, E]) {
		act.onContinue(value)
	}})
}

// Throw lifts a plain value onto the early-return channel.
func Throw[S, E any](early E) Effect[S, E] {
	return newEffect([]runner[S, E]{func(act action[S, E]) {
		act.onThrow(early)
	}})
}

// None is the absence of an effect: it holds no fragments, so performing
// it settles nothing and the terminal handler never fires.
func None[S, E any]() Effect[S, E] {
	return newEffect[S, E](nil)
}

// WrapResult lifts an already settled outcome onto the matching channel.
func WrapResult[S, E any](r Result[S, E]) Effect[S, E] {
	if r.IsOk() {
		return Continue[S, E](r.Value())
	}
	return Throw[S, E](r.Early())
}

// WrapOption lifts presence onto the success channel; absence becomes an
// early return carrying fallback.
func WrapOption[S, E any](o Option[S], fallback E) Effect[S, E] {
	if v, ok := o.Get(); ok {
		return Continue[S, E](v)
	}
	return Throw[S, E](fallback)
}

// Try defers a fallible call: call runs each time the effect is performed
// and its (value, error) pair is routed onto the channels, a non-nil error
// filling the early side.
func Try[S any](call func() (S, error)) Effect[S, error] {
	return newEffect([]runner[S, error]{func(act action[S, error]) {
		v, err := call()
		if err != nil {
			act.onThrow(err)
			return
		}
		act.onContinue(v)
	}})
}

// Batch merges independently built effects under a single value by
// concatenating their fragments in argument order. Performing the batch
// drives every fragment against the same terminal handler, so the handler
// fires once per settling fragment. Batching groups work; it does not make
// it concurrent.
func Batch[S, E any](effects ...Effect[S, E]) Effect[S, E] {
	total := 0
	for _, e := range effects {
		total += len(e.runners)
	}
	runners := make([]runner[S, E], 0, total)
	for _, e := range effects {
		runners = append(runners, e.runners...)
	}
	return newEffect(runners)
}

// run drives every fragment in order against act.
func (e Effect[S, E]) run(act action[S, E]) {
	for _, r := range e.runners {
		r(act)
	}
}

func (e Effect[S, E]) Size() int {
	return len(e.runners)
}

func (e Effect[S, E]) IsEmpty() bool {
	return len(e.runners) == 0
}

func (e Effect[S, E]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Effect[S, E]) Id() uuid.UUID {
	return e.id
}
