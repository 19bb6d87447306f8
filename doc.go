// Package slowcv is the numerical core for learning slow collective variables
// from time-lagged data: the linear-algebra pieces that sit between a neural
// encoder and its training loss.
//
// What is slowcv?
//
//	A small, dependency-light set of packages that together implement the
//	variational approach to conformational dynamics (VAC / TICA-like):
//		• standardize/  fitted affine feature standardization
//		• correlation/  streaming accumulation of C00, C01, C10, C11
//		• spectral/     generalized symmetric eigensolver C·v = w·Q·v and a
//		                stable pseudo-inverse / inverse square root
//		• seed/         one call to reseed every random stream
//		• matrix/       the dense matrix substrate and gonum bridge
//
// Data flow:
//
//	raw features ─► standardize ─► (external encoder) ─► z_t0, z_tt
//	    ─► correlation.Accumulator ─► Symmetrized (C, Q)
//	    ─► spectral.GenEigChol ─► eigenvalues (timescales) + eigenvectors (CVs)
//
// The encoder, trajectory loading, training loop and persisted formats are
// out of scope. See examples/slow_modes.go for an end-to-end run on a
// synthetic trajectory with an identity encoder.
package slowcv
