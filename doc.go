// Package gridastar finds shortest paths on an unbounded integer lattice
// while avoiding a set of blocked cells.
//
// It exposes three entry points:
//
//   - Search: run A* to completion and get a Result.
//   - Stepper: iterate the same search one expansion at a time to drive UIs or debugging tools.
//   - SearchBatch: run many independent searches on a bounded worker pool.
//
// No graph is built up front. Neighbours are generated on demand from the
// chosen MoveSet, and all search state is private to a single call.
package gridastar
