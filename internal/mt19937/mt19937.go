// Package mt19937 implements the 32-bit Mersenne Twister and the seed
// sequence used to initialize it from a handful of entropy words.
//
// Both follow the C++ <random> definitions exactly (std::mt19937 and
// std::seed_seq), so a given seed produces the same stream on every platform.
// Neither is suitable for cryptographic use.
package mt19937

const (
	// StateSize is the number of 32-bit words of engine state.
	StateSize = 624

	shift       = 397
	matrixA     = 0x9908b0df
	upperMask   = 0x80000000
	lowerMask   = 0x7fffffff
	initMult    = 1812433253
	DefaultSeed = 5489
)

// Engine is a 32-bit Mersenne Twister. It is not safe for concurrent use.
type Engine struct {
	state [StateSize]uint32
	index int
}

// New returns an engine seeded with a single word, the classic init_genrand
// initialization.
func New(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// NewFromSeq returns an engine whose whole state comes from seq.
func NewFromSeq(seq *SeedSeq) *Engine {
	e := &Engine{}
	e.SeedSeq(seq)
	return e
}

// Seed resets the engine state from a single word.
func (e *Engine) Seed(seed uint32) {
	e.state[0] = seed
	for i := 1; i < StateSize; i++ {
		prev := e.state[i-1]
		e.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	e.index = StateSize
}

// SeedSeq resets the engine state from a seed sequence.
func (e *Engine) SeedSeq(seq *SeedSeq) {
	seq.Generate(e.state[:])

	// An all-zero significant state would make the generator emit zeros forever.
	zero := e.state[0]&upperMask == 0
	for i := 1; zero && i < StateSize; i++ {
		zero = e.state[i] == 0
	}
	if zero {
		e.state[0] = upperMask
	}
	e.index = StateSize
}

// Uint32 returns the next tempered output and advances the state.
func (e *Engine) Uint32() uint32 {
	if e.index >= StateSize {
		e.twist()
	}
	y := e.state[e.index]
	e.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Discard advances the engine by n outputs.
func (e *Engine) Discard(n int) {
	for ; n > 0; n-- {
		e.Uint32()
	}
}

func (e *Engine) twist() {
	for i := 0; i < StateSize; i++ {
		y := (e.state[i] & upperMask) | (e.state[(i+1)%StateSize] & lowerMask)
		next := e.state[(i+shift)%StateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		e.state[i] = next
	}
	e.index = 0
}
