// Package log observes effect pipelines with zap: channel tees that emit
// structured entries as fragments settle, and a Perform wrapper with
// lifecycle logging. Entries carry the observed effect's identity under
// effect_id. Observation never changes settlement.
package log
