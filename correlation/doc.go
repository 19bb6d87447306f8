// SPDX-License-Identifier: MIT

// Package correlation accumulates the four time-lagged correlation matrices
// of a pair of feature batches.
//
// Given a batch of N paired observations, z_t0 (features at time t) and
// z_tt (features at time t+τ), both N×n, and per-pair weights w (len N):
//
//	C00 += z_t0ᵀ·(W⊙z_t0)    C01 += z_t0ᵀ·(W⊙z_tt)
//	C10 += z_ttᵀ·(W⊙z_t0)    C11 += z_ttᵀ·(W⊙z_tt)
//
// where W⊙z scales row i of z by w[i]. Sums are raw; no normalization by the
// number of observations or by Σw happens on accumulation, so batches can be
// added in any grouping (the result only depends on the set of pairs, up to
// floating-point association).
//
// Two surfaces are provided:
//
//   - Accumulate, a free function that mutates caller-owned accumulators in
//     place and returns the same pointers.
//   - Accumulator, which owns its four matrices, tracks the observation count
//     and total weight, and hands out normalized estimates (Normalized) or the
//     reversible pair C = ½(C01+C10), Q = ½(C00+C11) (Symmetrized) that feeds
//     spectral.GenEigChol directly.
//
// A batch that fails validation never touches the accumulators.
// Neither surface is safe for concurrent use; there is a single writer.
package correlation
