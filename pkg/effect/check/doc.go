// Package check provides validation stages for effect pipelines: rules
// gate the success channel and violations settle the early-return channel.
//
// Key constructs:
// - Rule: a predicate with a violation message
// - Validate/ValidateWith: gate a pipeline through one rule
// - ValidateAll: apply several rules, breaking early or joining violations
// - And/Or: combine whole validation effects left to right
// - ExprRule: compile an expr-lang expression into a Rule
package check
