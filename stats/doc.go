// Package stats aggregates cleaned trip records into per-filter station
// statistics and ranked route counts, and selects the visible node/edge
// set for a given set of view controls.
//
// The cache is built once per dataset load in a single linear pass and is
// never mutated afterwards; filter changes pick a different precomputed
// cell. Selection is pure and deterministic: identical inputs always yield
// identical membership and ordering.
package stats
