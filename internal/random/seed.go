// Package random provides seed generation for the dice roller.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// SeedSource tells where a roller seed came from.
type SeedSource string

const (
	// SeedSourceConfig means the seed was fixed by configuration.
	SeedSourceConfig SeedSource = "config"
	// SeedSourceSystem means the seed was drawn from the system entropy pool.
	SeedSourceSystem SeedSource = "system"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns the configured seed when it is set (non-zero), otherwise a seed
// from generate. A nil generate uses NewSeed.
func ResolveSeed(configured int64, generate func() (int64, error)) (int64, SeedSource, error) {
	if configured != 0 {
		return configured, SeedSourceConfig, nil
	}
	if generate == nil {
		generate = NewSeed
	}

	seed, err := generate()
	if err != nil {
		return 0, "", err
	}
	return seed, SeedSourceSystem, nil
}
