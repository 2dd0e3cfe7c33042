package effect

// Option is an optional value: either present with a value or empty.
type Option[S any] struct {
	value   S
	present bool
}

func Some[S any](value S) Option[S] {
	return Option[S]{
		value:   value,
		present: true,
	}
}

func Empty[S any]() Option[S] {
	return Option[S]{}
}

func (o Option[S]) IsSome() bool {
	return o.present
}

func (o Option[S]) Get() (S, bool) {
	return o.value, o.present
}

func (o Option[S]) OrElse(fallback S) S {
	if o.present {
		return o.value
	}
	return fallback
}
