// SPDX-License-Identifier: MIT

// Package standardize applies a fitted per-feature affine transform
//
//	y = (x − mean) / (stddev + eps)
//
// to observation-by-feature matrices before they reach an encoder.
//
// A Standardizer is immutable after construction: mean and stddev are
// copied in New (or estimated by Fit) and never change, so one value can be
// shared by any number of readers. eps (default 1e-9) keeps constant features
// from dividing by zero; it is added to stddev, not used as a floor.
package standardize
