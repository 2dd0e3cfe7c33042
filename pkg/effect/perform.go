package effect

// Never is the uninhabited early-return type: no value of it can be
// constructed, so an Effect[S, Never] has no legitimate way to settle
// early. Pure relies on this to offer a single-callback run.
type Never interface {
	never()
}

// Perform realizes the effect: it builds the terminal action and drives
// every fragment against it. The handler receives the settled outcome once
// per settling fragment, synchronously for immediate fragments and from
// the source's goroutine for unboxed ones. Performing the same effect
// value again re-executes every fragment from scratch, including
// re-subscribing wrapped external sources.
func Perform[S any, E any](e Effect[S, E], handler func(r Result[S, E])) {
	e.run(action[S, E]{
		onContinue: func(v S) { handler(Ok[S, E](v)) },
		onThrow:    func(early E) { handler(Err[S, E](early)) },
	})
}

// Pure realizes an effect whose early-return channel is statically
// impossible. The early slot of the terminal action panics: with Never in
// that position it cannot fire unless an adapter broke the runner
// contract, which is a programming error rather than a domain outcome.
func Pure[S any](e Effect[S, Never], onSuccess func(v S)) {
	e.run(action[S, Never]{
		onContinue: onSuccess,
		onThrow: func(Never) {
			panic("effect: early return fired on an Effect with uninhabited early channel")
		},
	})
}
