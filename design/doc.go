// Package design holds the mutable subject of evaluation: the architecture a
// user is assembling from zones, per-zone control assignments, and
// documented data flows.
//
// A State is a plain value with no goroutine safety of its own. Callers that
// evaluate concurrently with mutation must hand evaluators a Clone, so every
// evaluation sees a consistent snapshot.
package design
