package dice

import (
	"fmt"
	"math/rand/v2"
)

// Source provides uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Sampler selects how a face in [1, n] is drawn from a Source.
type Sampler int

const (
	// SamplerDirect draws the face with a single uniform range sample.
	SamplerDirect Sampler = iota
	// SamplerCoin flips a biased coin per face: the i-th face (from 0) is kept with
	// probability 1/(n-i). Slower for large dice, and just as uniform.
	SamplerCoin
)

// String returns the configuration name of the sampler.
func (s Sampler) String() string {
	switch s {
	case SamplerDirect:
		return "direct"
	case SamplerCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// ParseSampler maps a configuration name to a Sampler.
func ParseSampler(name string) (Sampler, error) {
	switch name {
	case "", "direct":
		return SamplerDirect, nil
	case "coin":
		return SamplerCoin, nil
	default:
		return SamplerDirect, fmt.Errorf("unknown sampler %q (want direct or coin)", name)
	}
}

// draw returns a uniform face in [1, n]. n must be at least 1.
func (s Sampler) draw(src Source, n int) int {
	if s == SamplerCoin {
		for i := 0; i < n-1; i++ {
			if src.IntN(n-i) == 0 {
				return i + 1
			}
		}
		return n
	}
	return src.IntN(n) + 1
}
