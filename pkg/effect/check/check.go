package check

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/ethanthoma/effect/pkg/effect"
)

// Rule reports whether value passes, with a message describing the
// violation when it does not.
type Rule[T any] func(value T) (valid bool, errMsg string)

// Validate gates the success channel through rule: an invalid value
// becomes an early return carrying the message as an error.
func Validate[T any](input effect.Effect[T, error], rule Rule[T]) effect.Effect[T, error] {
	return ValidateWith(input, rule, func(errMsg string) error {
		return errors.New(errMsg)
	})
}

// ValidateWith is Validate for any early type: onInvalid shapes the
// violation message into E.
func ValidateWith[T any, E any](input effect.Effect[T, E], rule Rule[T],
	onInvalid func(errMsg string) E) effect.Effect[T, E] {

	return effect.Then(input, func(v T) effect.Effect[T, E] {
		if valid, errMsg := rule(v); !valid {
			return effect.Throw[T, E](onInvalid(errMsg))
		}
		return effect.Continue[T, E](v)
	})
}

// ValidateAll applies rules left to right. With breakOnError the first
// violation wins and later rules never run; otherwise every rule runs and
// the violations are joined into one error.
func ValidateAll[T any](input effect.Effect[T, error],
	breakOnError bool, // exit on first error
	rules ...Rule[T]) effect.Effect[T, error] {

	return effect.Then(input, func(v T) effect.Effect[T, error] {
		var err error
		for _, rule := range rules {
			valid, errMsg := rule(v)
			if valid {
				continue
			}

			if breakOnError {
				return effect.Throw[T, error](errors.New(errMsg))
			}

			e := effect.GetErrors(err)
			e = append(e, errors.New(errMsg))
			err = errors.Join(e...)
		}

		if !effect.IsNil(err) {
			return effect.Throw[T, error](err)
		}
		return effect.Continue[T, error](v)
	})
}

// And folds two validations of the same subject left to right: the first
// early return wins and the second effect is never consulted past it.
// When both succeed their values are combined.
func And[T any, E any](first effect.Effect[T, E], second effect.Effect[T, E],
	combine func(a T, b T) T) effect.Effect[T, E] {

	return effect.Handle(first, func(r effect.Result[T, E]) effect.Effect[T, E] {
		if !r.IsOk() {
			return effect.Throw[T, E](r.Early())
		}

		a := r.Value()
		return effect.Map(second, func(b T) T {
			return combine(a, b)
		})
	})
}

// Or recovers: when first settles early, second decides. The first
// success wins; when both settle early the first reason is kept.
func Or[T any, E any](first effect.Effect[T, E], second effect.Effect[T, E]) effect.Effect[T, E] {
	return effect.Handle(first, func(r effect.Result[T, E]) effect.Effect[T, E] {
		if r.IsOk() {
			return effect.WrapResult(r)
		}

		reason := r.Early()
		return effect.MapEarly(second, func(E) E {
			return reason
		})
	})
}

const exprValueVar = "value"

// ExprRule compiles an expr boolean program into a Rule. The candidate is
// bound to the variable "value", typed from T's zero value. Compile errors
// surface at construction; evaluation errors read as violations.
func ExprRule[T any](code string) (Rule[T], error) {
	var zero T
	program, err := expr.Compile(code,
		expr.Env(map[string]any{exprValueVar: zero}),
		expr.AsBool())
	if err != nil {
		return nil, err
	}

	return func(value T) (bool, string) {
		out, err := expr.Run(program, map[string]any{exprValueVar: value})
		if err != nil {
			return false, err.Error()
		}
		if ok, _ := out.(bool); ok {
			return true, ""
		}
		return false, fmt.Sprintf("expression %q not satisfied", code)
	}, nil
}
