package common

// Random is the source of randomness the simulation draws from.
// SeededRNG satisfies it; tests may substitute a scripted source.
type Random interface {
	Random() float64
	Intn(n int) int
	RandomFloat(min, max float64) float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// The same seed always yields the same sequence, so a whole game can be
// replayed from its seed.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

var _ Random = (*SeededRNG)(nil)

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last set to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// Intn returns an integer in [0, n). n <= 0 yields 0.
func (r *SeededRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.RandomInt(0, n)
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// LevelSeed derives a deterministic seed for a wave from the game seed.
func LevelSeed(baseSeed uint32, levelNumber int) uint32 {
	seed := baseSeed ^ (uint32(levelNumber) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
