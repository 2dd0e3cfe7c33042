package effect

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer boxed in
// an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// GetErrors flattens err into its parts: a joined error unwraps to its
// list, a plain error becomes a one-element list, nil an empty one.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellationError reports whether err stems from context cancellation
// or deadline expiry, however deeply wrapped.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
