package uuid4

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// EntropySource supplies the non-deterministic words used to seed a
// Generator. Implementations need not be safe for concurrent use; seeding
// reads SeedWords words in a row from a single goroutine.
type EntropySource interface {
	Uint32() (uint32, error)
}

// SeedWords is the number of entropy words drawn to seed one Generator.
const SeedWords = 8

// OSEntropy reads from the operating system's random source.
var OSEntropy EntropySource = ReaderEntropy(rand.Reader)

// ReaderEntropy returns an EntropySource that reads 4 bytes per word from r.
// This is primarily useful for testing with deterministic random sources.
func ReaderEntropy(r io.Reader) EntropySource {
	return readerEntropy{r: r}
}

type readerEntropy struct {
	r io.Reader
}

func (e readerEntropy) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(e.r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// WordsEntropy replays a fixed list of words and fails once they run out.
type WordsEntropy struct {
	Words []uint32
	pos   int
}

// Uint32 returns the next stored word.
func (e *WordsEntropy) Uint32() (uint32, error) {
	if e.pos >= len(e.Words) {
		return 0, io.ErrUnexpectedEOF
	}
	w := e.Words[e.pos]
	e.pos++
	return w, nil
}

// drawSeed collects the seed words for one generator.
func drawSeed(src EntropySource) ([SeedWords]uint32, error) {
	var words [SeedWords]uint32
	for i := range words {
		w, err := src.Uint32()
		if err != nil {
			return words, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		words[i] = w
	}
	return words, nil
}
