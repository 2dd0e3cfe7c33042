package effect

// Result is a settled outcome: a value on exactly one of the success or
// early-return channels.
type Result[S, E any] struct {
	value   S
	early   E
	isOk    bool
	settled bool
}

func Ok[S, E any](value S) Result[S, E] {
	return Result[S, E]{
		value:   value,
		isOk:    true,
		settled: true,
	}
}

func Err[S, E any](early E) Result[S, E] {
	return Result[S, E]{
		early:   early,
		isOk:    false,
		settled: true,
	}
}

func (r Result[S, E]) Value() S {
	return r.value
}

func (r Result[S, E]) Early() E {
	return r.early
}

func (r Result[S, E]) IsOk() bool {
	return r.isOk
}

func (r Result[S, E]) IsEarly() bool {
	return r.settled && !r.isOk
}

func (r Result[S, E]) IsEmpty() bool {
	return !r.settled
}

// Fold collapses a result into a single value via per-channel handlers.
func Fold[S, E, T any](r Result[S, E], onOk func(value S) T, onEarly func(early E) T) T {
	if r.IsOk() {
		return onOk(r.value)
	}
	return onEarly(r.early)
}
