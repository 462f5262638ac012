// Package judgingengine implements vote capture and result aggregation inside
// the competition context.
//
// Judges submit one vote per artwork (create-or-update keyed by judge and
// artwork, enforced by the store). Administrators read results, which are
// recomputed from the full vote set on every request: per-artwork totals and
// averages plus a top list per category ranked by total score.
package judgingengine
