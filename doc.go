// Package uuid4 provides random (version 4) Universally Unique Identifiers
// as defined by RFC 4122.
//
// A UUID is a 16-byte value. Generated UUIDs come from a 32-bit Mersenne
// Twister seeded once with eight words of operating system entropy, with the
// version (4) and variant (RFC 4122) bits stamped into bytes 6 and 8. The
// generator is fast and statistically sound but NOT cryptographically
// secure: do not use these UUIDs as secrets or tokens.
//
// Basic Usage:
//
//	// Generate a new UUIDv4
//	id := uuid4.New()
//	fmt.Println(id.String())
//
//	// Parse a UUID from string
//	id, err := uuid4.Parse("69538a3f-c07a-4be1-8705-fcc201bd673b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Hash for custom hash tables
//	h := id.Hash()
//
// Parsing:
//
// Parse accepts the canonical 8-4-4-4-12 form, the 32-digit form without
// hyphens, either of those in braces, and the urn:uuid: prefix. Hex digits
// may be upper or lower case. ParseRunes and ParseUTF16 read wide
// characters. Any version and variant is accepted; failures wrap
// ErrInvalidFormat.
//
// Custom Generator:
//
//	// A Generator owned by one goroutine avoids the pool round trip
//	gen := uuid4.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id := gen.New()
//	    // Use id...
//	}
//
// Thread Safety:
//
// A Generator must not be used from more than one goroutine at a time.
// The package-level New can be called concurrently: each call borrows a
// generator nobody else is using, creating and seeding a new one on demand.
// UUID values are immutable and can be shared freely.
//
// Hashing:
//
// Hash returns the FNV-1a hash of the 16 bytes at the native word width
// (Hash32 or Hash64). It is unseeded and stable across processes.
package uuid4
