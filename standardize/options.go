// SPDX-License-Identifier: MIT

package standardize

import "math"

// DefaultEps is added to every standard deviation before dividing.
const DefaultEps = 1e-9

const panicEpsInvalid = "standardize: WithEps: eps must be finite, positive"

// Option configures New and Fit.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	eps float64
}

// WithEps overrides DefaultEps. Panics unless eps is finite and > 0.
func WithEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEps}
	for _, set := range user {
		set(&o)
	}

	return o
}
