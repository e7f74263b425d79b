// Package assess implements the architecture evaluators: the coverage
// scorer, the gap analyzer, the attack simulator, and the trust-jump
// detector.
//
// All four evaluators are pure functions of a design and a catalog (plus an
// attack scenario for the simulator). They carry no state between calls,
// perform no I/O, and are safe to run concurrently as long as the design
// they are handed is not mutated mid-evaluation; hand them a design.Clone
// when in doubt.
//
// Unknown control names are tolerated everywhere and contribute nothing.
// The single hard reference check lives in the attack simulator: an attack
// scenario whose stages or blocking rules name a zone missing from the
// catalog fails with UnknownReferenceError rather than silently skipping
// the stage.
package assess
