package shared

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Random is an abstraction over the random draws the simulation makes,
// allowing deterministic replay in tests. Every stochastic decision in the
// engine goes through this interface; nothing reads the global rand state.
type Random interface {
	// Float64 returns a uniformly distributed value in [0.0, 1.0).
	Float64() float64
	// Intn returns a uniformly distributed value in [0, n).
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// seededRandom wraps math/rand with an explicit seed so that two sources
// created with the same seed produce identical draw sequences.
type seededRandom struct {
	rng *rand.Rand
}

// NewSeededRandom creates a deterministic random source from the given seed
func NewSeededRandom(seed int64) Random {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomSeed draws a fresh seed from the operating system's entropy pool
func NewRandomSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read entropy: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func (s *seededRandom) Float64() float64 {
	return s.rng.Float64()
}

func (s *seededRandom) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *seededRandom) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// ScriptedRandom replays fixed draw sequences, for tests that need to steer
// individual stochastic decisions. Exhausted sequences return zero, which
// maps to the "nothing happens" branch of every draw in the engine.
type ScriptedRandom struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

func (s *ScriptedRandom) Float64() float64 {
	if s.floatIdx >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.floatIdx]
	s.floatIdx++
	return v
}

func (s *ScriptedRandom) Intn(n int) int {
	if s.intIdx >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.intIdx]
	s.intIdx++
	return v % n
}

// Shuffle keeps the input order, keeping scripted runs predictable
func (s *ScriptedRandom) Shuffle(n int, swap func(i, j int)) {}
