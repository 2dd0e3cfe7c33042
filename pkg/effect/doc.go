// Package effect provides a two-channel deferred computation value,
// Effect[S, E]: a description of work that, when performed, settles on
// exactly one of a success channel (S) or an early-return channel (E).
// Building and combining effects is pure; execution happens only in
// Perform or Pure, and performing the same value again re-executes it
// from scratch.
//
// Highlights:
// - Continue/Throw/None: effects that settle immediately, or not at all
// - WrapResult/WrapOption/Try: lift existing outcomes onto the channels
// - Batch: merge independent effects under one value
// - Map/MapEarly/MapBoth: transform one channel, the other passes through
// - Tee/TeeEarly: observe a channel without changing settlement
// - Then/From/ThenTry: sequence success values into further effects
// - Handle: catch both channels and continue with a new effect
// - Unbox/UnboxResult: absorb external subscribe-once async sources
// - Perform/Pure: run a built effect, observing its settled outcome
//
// The early-return channel is ordinary data, not Go errors: E is any
// type, error included. Effect[S, error] recovers familiar fallible-call
// pipelines, while Effect[S, Never] states statically that no early
// return can happen.
package effect
