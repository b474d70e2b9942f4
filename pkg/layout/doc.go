// Package layout generates and maintains the set of rectangles laid over an
// image.
//
// A [Generator] draws rectangle sizes uniformly from a [Bounds] range and
// positions uniformly over a canvas extent, retrying a bounded number of
// times to avoid overlapping rectangles that are already placed. Placement is
// best effort: when the retry budget runs out the last candidate is accepted
// even if it overlaps, so generation never blocks.
//
// # Operations
//
//   - [Generator.GenerateOne]: one rectangle, avoiding a given set
//   - [Generator.GenerateAll]: a fresh set of n rectangles
//   - [Generator.ResizeCount]: grow by appending or shrink by keeping the first n
//   - [Generator.RescaleAll]: redraw every size in place, positions untouched
//
// Growing and shrinking preserve every rectangle that survives, so manual
// placements made through the interact package are never reshuffled by a
// count or size change.
//
// # Reproducibility
//
// Generators are seeded with [WithSeed]; the same seed, extent, bounds and
// call sequence produce the same layout.
package layout
