// Package chain provides a fluent wrapper around effect.Effect
// for building deferred two-channel pipelines without naming every
// intermediate effect.
//
// It composes functions like Then, Map, Handle, Tee, and Perform behind a
// convenient Chain[S, E] type. Type-changing steps are package functions;
// steps that keep both channel types are methods.
//
// Key operations:
// - Start/FromValue/FromEarly: begin a chain from an effect or a value
// - Then: sequence into a new effect via a function
// - ThenTry: call a function (Out, error) and route the error early
// - Map/MapEarly: transform one channel (the other passes through)
// - Handle: catch both channels and continue with a new effect
// - Ensure/EnsureEarly: run side effects without changing settlement
// - Perform/Finally: realize the chain and observe its outcomes
package chain
