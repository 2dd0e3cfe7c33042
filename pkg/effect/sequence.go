package effect

// Then sequences onSuccess after input: when a fragment settles on the
// success channel with v, the fragments of onSuccess(v) run against the
// same terminal action. An early return short-circuits the fragment and
// onSuccess is never called for it.
func Then[In any, Out any, E any](input Effect[In, E],
	onSuccess func(v In) Effect[Out, E]) Effect[Out, E] {

	runners := make([]runner[Out, E], 0, len(input.runners))
	for _, run := range input.runners {
		run := run
		runners = append(runners, func(act action[Out, E]) {
			run(action[In, E]{
				onContinue: func(v In) { onSuccess(v).run(act) },
				onThrow:    act.onThrow,
			})
		})
	}
	return newEffect(runners)
}

// From starts a pipeline from a plain value.
func From[In any, Out any, E any](value In,
	onSuccess func(v In) Effect[Out, E]) Effect[Out, E] {

	return Then(Continue[In, E](value), onSuccess)
}

// ThenTry sequences a fallible call after input, a non-nil error settling
// the early-return channel.
func ThenTry[In any, Out any](input Effect[In, error],
	onTryExecute func(v In) (Out, error)) Effect[Out, error] {

	return Then(input, func(v In) Effect[Out, error] {
		out, err := onTryExecute(v)
		if err != nil {
			return Throw[Out, error](err)
		}
		return Continue[Out, error](out)
	})
}

// Handle catches both channels: each settled fragment is folded through
// onSettle and the effect it returns runs against the same terminal
// action. Handle is the one combinator that can turn an early return back
// into a success, or a success into an early return, and it may retype
// both channels while doing so.
func Handle[In any, Out any, E any, E2 any](input Effect[In, E],
	onSettle func(r Result[In, E]) Effect[Out, E2]) Effect[Out, E2] {

	runners := make([]runner[Out, E2], 0, len(input.runners))
	for _, run := range input.runners {
		run := run
		runners = append(runners, func(act action[Out, E2]) {
			run(action[In, E]{
				onContinue: func(v In) { onSettle(Ok[In, E](v)).run(act) },
				onThrow:    func(early E) { onSettle(Err[In, E](early)).run(act) },
			})
		})
	}
	return newEffect(runners)
}
