package effect

// Unbox absorbs an external asynchronous primitive into the effect world.
// The box is opaque; subscribe is trusted to register the provided
// callback on it and have the source invoke the callback with the resolved
// value exactly once. Subscription happens at perform time, so performing
// the same effect again re-subscribes from scratch.
//
// The exactly-once contract is the caller's to keep: a source that never
// calls back leaves the effect unsettled and the terminal handler silent,
// and a source that calls back more than once re-fires the downstream
// continuation once per extra call. Neither case is detected here.
//
// The callback may fire on whatever goroutine the source delivers on;
// anything the downstream continuation touches must be safe to access from
// that goroutine.
func Unbox[B any, S any, E any](box B, subscribe func(b B, resolve func(v S))) Effect[S, E] {
	return newEffect([]runner[S, E]{func(act action[S, E]) {
		subscribe(box, act.onContinue)
	}})
}

// UnboxResult absorbs a source that resolves to a settled outcome, routing
// the early variant straight onto the early-return channel. The same
// exactly-once contract as Unbox applies.
func UnboxResult[B any, S any, E any](box B, subscribe func(b B, resolve func(r Result[S, E]))) Effect[S, E] {
	return newEffect([]runner[S, E]{func(act action[S, E]) {
		subscribe(box, func(r Result[S, E]) {
			if r.IsOk() {
				act.onContinue(r.Value())
				return
			}
			act.onThrow(r.Early())
		})
	}})
}
