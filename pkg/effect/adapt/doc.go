// Package adapt contains runtime plumbing between effects and ordinary Go
// concurrency: channel bridges, deferred blocking calls, timers, and
// buffer configuration via context. It does not define business logic;
// it is the boundary where the subscribe-once contract meets goroutines.
//
// Key constructs:
// - FromChan/Receive: settle from a channel, with or without ctx awareness
// - Call: run a blocking (T, error) function on its own goroutine
// - After: settle with a value after a delay
// - ToChan/Collect: expose a performed effect's outcomes as a channel/slice
// - WithBufferOptions: size the outcome channel through the context
//
// Everything here delivers on source goroutines: whatever a downstream
// continuation touches must tolerate that.
package adapt
