package uuid4

import (
	"encoding/binary"
	"sync"

	"github.com/Lzww0608/uuid4/internal/mt19937"
)

// Generator produces random (version 4) UUIDs from a Mersenne Twister
// seeded once, at construction, with SeedWords words of OS entropy.
//
// A Generator is not safe for concurrent use. Give each goroutine its own,
// or use the package-level New which does that for you.
type Generator struct {
	engine *mt19937.Engine
}

// NewGenerator creates a new generator seeded from OSEntropy.
// It panics if the operating system cannot supply entropy; there is no
// weaker fallback seed.
func NewGenerator() *Generator {
	g, err := NewGeneratorFromSource(OSEntropy)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGeneratorFromSource creates a new generator seeded from src.
// This is primarily useful for testing with deterministic entropy.
func NewGeneratorFromSource(src EntropySource) (*Generator, error) {
	words, err := drawSeed(src)
	if err != nil {
		return nil, err
	}
	return &Generator{
		engine: mt19937.NewFromSeq(mt19937.NewSeedSeq(words[:]...)),
	}, nil
}

// New generates a new version 4 UUID.
func (g *Generator) New() UUID {
	var uuid UUID

	// Four engine words, each laid down little-endian.
	for i := 0; i < 16; i += 4 {
		binary.LittleEndian.PutUint32(uuid[i:i+4], g.engine.Uint32())
	}

	// Set variant to RFC 4122 (10xx xxxx)
	uuid[8] = (uuid[8] & 0xBF) | 0x80
	// Set version to 4 (0100 xxxx)
	uuid[6] = (uuid[6] & 0x4F) | 0x40

	return uuid
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid4.Must(uuid4.Parse("69538a3f-c07a-4be1-8705-fcc201bd673b"))
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// generators hands out goroutine-exclusive generators to New. A generator
// is created, with its own entropy draw, only when no idle one exists.
var generators = sync.Pool{
	New: func() any {
		return NewGenerator()
	},
}

// New generates a new version 4 UUID.
// It is safe to call from any goroutine: each call checks a generator out
// of a pool for its exclusive use, so no engine is ever shared by two
// concurrent calls.
func New() UUID {
	g := generators.Get().(*Generator)
	defer generators.Put(g)
	return g.New()
}

// NewString is shorthand for New().String().
func NewString() string {
	return New().String()
}
