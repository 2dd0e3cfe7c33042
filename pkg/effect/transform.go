package effect

// Map rewires every fragment so the success channel delivers
// onSuccess(value); the early-return channel passes through untouched.
// Nothing runs until the effect is performed.
func Map[In any, Out any, E any](input Effect[In, E],
	onSuccess func(v In) Out) Effect[Out, E] {

	runners := make([]runner[Out, E], 0, len(input.runners))
	for _, run := range input.runners {
		run := run
		runners = append(runners, func(act action[Out, E]) {
			run(action[In, E]{
				onContinue: func(v In) { act.onContinue(onSuccess(v)) },
				onThrow:    act.onThrow,
			})
		})
	}
	return newEffect(runners)
}

// MapEarly is the mirror of Map: it rewires the early-return channel and
// leaves the success channel untouched.
func MapEarly[T any, E any, E2 any](input Effect[T, E],
	onEarly func(early E) E2) Effect[T, E2] {

	runners := make([]runner[T, E2], 0, len(input.runners))
	for _, run := range input.runners {
		run := run
		runners = append(runners, func(act action[T, E2]) {
			run(action[T, E]{
				onContinue: act.onContinue,
				onThrow:    func(early E) { act.onThrow(onEarly(early)) },
			})
		})
	}
	return newEffect(runners)
}

// MapBoth transforms the two channels at once.
func MapBoth[In any, Out any, E any, E2 any](input Effect[In, E],
	onSuccess func(v In) Out,
	onEarly func(early E) E2) Effect[Out, E2] {

	return MapEarly(Map(input, onSuccess), onEarly)
}

// Tee observes the success value as it passes, leaving settlement
// untouched. The observation runs when the fragment settles, not at
// construction.
func Tee[T any, E any](input Effect[T, E], onSuccess func(v T)) Effect[T, E] {
	return Map(input, func(v T) T {
		onSuccess(v)
		return v
	})
}

// TeeEarly observes the early-return value as it passes.
func TeeEarly[T any, E any](input Effect[T, E], onEarly func(early E)) Effect[T, E] {
	return MapEarly(input, func(early E) E {
		onEarly(early)
		return early
	})
}
