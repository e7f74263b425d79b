// Package session provides storage for in-progress designs keyed by session
// ID, so a UI can park a user's work between interactions.
//
// Two implementations are provided: MemoryStore for single-process use and
// RedisStore for deployments where sessions must survive a restart or be
// shared across replicas. Both hand out deep copies, never live references,
// so an evaluation reading a stored design always sees a consistent
// snapshot no matter what the UI does concurrently.
package session
