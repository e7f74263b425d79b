// Package catalog provides the immutable reference data consumed by the
// architecture evaluators: security zones, the control library, and attack
// scenarios.
//
// A Catalog is built once, from the builtin defaults via Default() or from a
// YAML file via LoadFile, validated at construction time, and never mutated
// afterwards. Evaluators read it concurrently without locking.
//
// The catalog does not constrain the control names a design may use: a design
// can reference controls that do not exist in the catalog, and evaluators
// treat those names as contributing nothing rather than as errors.
package catalog
