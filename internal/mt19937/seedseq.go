package mt19937

// SeedSeq spreads a short list of entropy words over an arbitrarily long
// output so that every output word depends on every input word.
type SeedSeq struct {
	v []uint32
}

// NewSeedSeq copies words into a new seed sequence.
func NewSeedSeq(words ...uint32) *SeedSeq {
	v := make([]uint32, len(words))
	copy(v, words)
	return &SeedSeq{v: v}
}

// Size returns the number of stored entropy words.
func (s *SeedSeq) Size() int {
	return len(s.v)
}

// Generate fills dst with well-mixed 32-bit words.
func (s *SeedSeq) Generate(dst []uint32) {
	n := len(dst)
	if n == 0 {
		return
	}
	for i := range dst {
		dst[i] = 0x8b8b8b8b
	}

	size := len(s.v)
	var t int
	switch {
	case n >= 623:
		t = 11
	case n >= 68:
		t = 7
	case n >= 39:
		t = 5
	case n >= 7:
		t = 3
	default:
		t = (n - 1) / 2
	}
	p := (n - t) / 2
	q := p + t
	m := size + 1
	if n > m {
		m = n
	}

	for k := 0; k < m; k++ {
		r1 := 1664525 * mix(dst[k%n]^dst[(k+p)%n]^dst[(k+n-1)%n])
		var r2 uint32
		switch {
		case k == 0:
			r2 = r1 + uint32(size)
		case k <= size:
			r2 = r1 + uint32(k%n) + s.v[k-1]
		default:
			r2 = r1 + uint32(k%n)
		}
		dst[(k+p)%n] += r1
		dst[(k+q)%n] += r2
		dst[k%n] = r2
	}

	for k := m; k < m+n; k++ {
		r3 := 1566083941 * mix(dst[k%n]+dst[(k+p)%n]+dst[(k+n-1)%n])
		r4 := r3 - uint32(k%n)
		dst[(k+p)%n] ^= r3
		dst[(k+q)%n] ^= r4
		dst[k%n] = r4
	}
}

func mix(x uint32) uint32 {
	return x ^ (x >> 27)
}
