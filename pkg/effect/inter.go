package effect

import (
	"time"

	"github.com/google/uuid"
)

type ValueProvider[S any] interface {
	// Value returns the success-channel value
	Value() S
	// IsOk reports whether the success channel settled
	IsOk() bool
}

// WithEarly defines an interface for settled outcomes that may carry an
// early-return value instead of a success value
type WithEarly[S any, E any] interface {
	ValueProvider[S]
	// Early returns the early-return value if that channel settled
	Early() E
	// IsEarly reports whether the early-return channel settled
	IsEarly() bool
}

// Described is implemented by values stamped with tracing identity
type Described interface {
	// Id returns the identity stamped at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
