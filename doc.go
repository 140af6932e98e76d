// Package polyclip implements a Vatti-style sweep-line polygon clipper.
//
// It performs the four Boolean set operations — intersection, union,
// difference, and symmetric difference (XOR) — over arbitrarily complex
// polygons: polygons with holes, self-intersections, and touching or
// overlapping edges. Open paths (polylines) may be clipped against a
// closed region. All coordinates are signed 64-bit integers; geometric
// predicates are evaluated with 128-bit intermediate arithmetic so that
// the result is exact and deterministic regardless of input magnitude.
//
// # Overview
//
// The engine is a pipeline of five cooperating stages:
//
//   - a topology builder that turns each input path into a ring of
//     vertices and a sorted list of local minima (vertex.go, localminima.go);
//   - a sweep controller that drives the scanbeam loop (sweep.go);
//   - an active edge set that keeps the edges crossing the current
//     scanline in left-to-right order and discovers crossings within a
//     scanbeam (edge.go, ael.go);
//   - a winding and intersection engine that tracks winding counts under
//     the active fill rule and decides which edges contribute to the
//     output (winding.go);
//   - an output assembler and post-processor that builds provisional
//     polygon rings during the sweep and, once it completes, merges,
//     splits, and cleans them into the final result (outrec.go, joiner.go).
//
// # Error handling
//
// Degenerate input (a closed path with fewer than two distinct points,
// for example) is silently dropped, never reported. An internal
// invariant violation during Execute is recovered at the call boundary
// and reported as ErrClipperExecution with an empty result; Execute
// never panics across its public boundary.
//
// # Coordinates
//
// Point64, Path64, and Paths64 are the sole data types the engine
// accepts and returns. Floating-point scaling, I/O, and the thin
// driver that wires subject and clip paths together are left to
// callers — see cmd/polyclip for one such driver.
package polyclip
