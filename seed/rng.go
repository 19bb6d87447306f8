// SPDX-License-Identifier: MIT

package seed

import (
	"log/slog"
	mrand "math/rand"
	randv2 "math/rand/v2"
	"sync"

	xrand "golang.org/x/exp/rand"
)

// DefaultSeed is the seed used by SetDefault.
const DefaultSeed int64 = 42

// Stream identifiers fed to deriveSeed.
const (
	streamNumericHi uint64 = 1
	streamNumericLo uint64 = 2
	streamTensor    uint64 = 3
)

var (
	mu      sync.Mutex
	logger  *slog.Logger
	current int64
	general *mrand.Rand
	numeric *randv2.Rand
	tensor  *xrand.Rand
)

func init() {
	reseed(DefaultSeed)
}

// Set reseeds every stream from seed and logs the new seed at info level.
func Set(seed int64) {
	mu.Lock()
	reseed(seed)
	l := logger
	mu.Unlock()

	if l == nil {
		l = slog.Default()
	}
	l.Info("setting random seed", "seed", seed)
}

// SetDefault is Set(DefaultSeed).
func SetDefault() { Set(DefaultSeed) }

// SetLogger routes the reseed confirmation to l; nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Current returns the seed of the last Set (DefaultSeed before any call).
func Current() int64 {
	mu.Lock()
	defer mu.Unlock()

	return current
}

// General returns the general-purpose stream.
func General() *mrand.Rand {
	mu.Lock()
	defer mu.Unlock()

	return general
}

// Numeric returns the numeric-array stream.
func Numeric() *randv2.Rand {
	mu.Lock()
	defer mu.Unlock()

	return numeric
}

// Tensor returns the tensor-initialization stream.
func Tensor() *xrand.Rand {
	mu.Lock()
	defer mu.Unlock()

	return tensor
}

// reseed replaces all three streams. Caller holds mu (or is init).
func reseed(seed int64) {
	current = seed
	general = mrand.New(mrand.NewSource(seed))
	numeric = randv2.New(randv2.NewPCG(
		uint64(deriveSeed(seed, streamNumericHi)),
		uint64(deriveSeed(seed, streamNumericLo)),
	))
	tensor = xrand.New(xrand.NewSource(uint64(deriveSeed(seed, streamTensor))))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so nearby parents (42, 43) and nearby
// stream ids give unrelated children.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
