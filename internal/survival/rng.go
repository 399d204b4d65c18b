// Package survival pre-determines win/loss outcomes for the survival-quiz
// video variant, using an explicit deterministic generator so test suites can
// assert exact sequences for a given seed.
package survival

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// Next advances a SplitMix64 generator. The state is threaded explicitly:
// callers pass the current state and receive the next state alongside the
// output value. SplitMix64 is fully specified (Steele et al., "Fast
// Splittable Pseudorandom Number Generators"), so sequences are identical
// across platforms and Go versions.
func Next(state uint64) (nextState, value uint64) {
	state += 0x9E3779B97F4A7C15
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return state, z ^ (z >> 31)
}

// NextBool draws one ~50/50 outcome by consuming the top bit of the next value.
func NextBool(state uint64) (nextState uint64, outcome bool) {
	next, v := Next(state)
	return next, v>>63 == 1
}

// SeedFromEntropy draws an unpredictable seed once from the OS. Round
// decisions made from it remain reproducible given the logged seed value.
func SeedFromEntropy() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
