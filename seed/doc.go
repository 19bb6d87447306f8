// SPDX-License-Identifier: MIT

// Package seed is the single reseeding entry point for reproducible runs.
//
// Three process-wide random streams are kept, one per consumer family:
//
//   - General: math/rand, for general-purpose sampling (shuffles, splits).
//   - Numeric: math/rand/v2 PCG, for numeric-array sampling.
//   - Tensor: golang.org/x/exp/rand, for tensor initialization. There is no
//     separate accelerator stream; this stream serves both.
//
// Set(n) reseeds all three at once: General with n verbatim, the other two
// with sub-seeds derived from n by a SplitMix64 mix, so the streams never
// replay each other's sequence. Two calls to Set with the same n followed by
// the same draws produce identical values on every stream.
//
// Concurrency:
//   - Set, the stream getters and the *Matrix helpers serialize on a package
//     mutex. The *rand.Rand values returned by the getters are not
//     goroutine-safe themselves; draw from one goroutine or use the helpers.
package seed
