package core

import "math/rand/v2"

// RandomSource yields the coin flips that break ties in stochastic update
// rules. Implementations need not be safe for concurrent use.
type RandomSource interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed restarts the generator from seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). Non-positive n yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// ScriptedSource replays a fixed sequence of bits, wrapping around at the end.
// An empty script always yields false.
type ScriptedSource struct {
	bits []bool
	pos  int
}

// NewScriptedSource returns a source that replays bits in order.
func NewScriptedSource(bits ...bool) *ScriptedSource {
	return &ScriptedSource{bits: append([]bool(nil), bits...)}
}

// Bool returns the next scripted bit.
func (s *ScriptedSource) Bool() bool {
	if len(s.bits) == 0 {
		return false
	}
	b := s.bits[s.pos]
	s.pos = (s.pos + 1) % len(s.bits)
	return b
}

// Drawn reports how many bits have been consumed modulo the script length.
func (s *ScriptedSource) Drawn() int { return s.pos }
