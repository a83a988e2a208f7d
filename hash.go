package uuid4

import "math/bits"

// FNV-1a parameters, see http://www.isthe.com/chongo/tech/comp/fnv/#FNV-1a
const (
	offset32 = 2166136261
	prime32  = 16777619
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Hash returns the FNV-1a hash of the UUID's 16 bytes at the platform's
// native word width: Hash32 on 32-bit targets, Hash64 on 64-bit ones.
//
// The hash is unseeded, so it is the same in every process. It is meant
// for bucketing in hash tables, not for untrusted keys.
func Hash(u UUID) uint {
	if bits.UintSize == 32 {
		return uint(Hash32(u))
	}
	return uint(Hash64(u))
}

// Hash is shorthand for Hash(u).
func (u UUID) Hash() uint {
	return Hash(u)
}

// Hash32 returns the 32-bit FNV-1a hash of the UUID's bytes.
func Hash32(u UUID) uint32 {
	h := uint32(offset32)
	for _, b := range u {
		h ^= uint32(b)
		h *= prime32
	}
	return h
}

// Hash64 returns the 64-bit FNV-1a hash of the UUID's bytes.
func Hash64(u UUID) uint64 {
	h := uint64(offset64)
	for _, b := range u {
		h ^= uint64(b)
		h *= prime64
	}
	return h
}
