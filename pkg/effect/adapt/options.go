package adapt

import "context"

type OptionKey string

const (
	BufferOptionKey OptionKey = "buffer_options"
)

type BufferOptions struct {
	Size int
}

// WithBufferOptions overrides the buffer size ToChan uses for its outcome
// channel. Only positive sizes take effect.
func WithBufferOptions(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, BufferOptionKey, BufferOptions{Size: size})
}

// GetBufferSize reads the configured buffer size, falling back to
// defaultSize when unset or not positive. An unbuffered outcome channel
// blocks Perform on synchronous fragments before any reader exists, so
// zero reads as unset.
func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(BufferOptionKey).(BufferOptions)
	if ok && options.Size > 0 {
		return options.Size
	}
	return defaultSize
}
