// Package scoring computes normalized, interpreted results for psychometric
// instruments (MBTI, Holland/RIASEC, DISC, Gardner, NEO-FFI, PVQ, SNAP-IV)
// from a user's raw per-question responses.
//
// Every scorer is a pure, synchronous function over its input: no I/O, no
// shared state, no hidden clock except the processing timestamp in the
// generic fallback summary. Callers may invoke the engine concurrently
// without coordination.
//
// Instruments self-register from their subpackages; import
// internal/scoring/all (blank import) to link the built-in set into a binary.
package scoring
