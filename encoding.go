package uuid4

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeToHex encodes the UUID to 32 lowercase hex digits without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes exactly 32 hex digits to a UUID. Unlike Parse it
// accepts no hyphens, braces or prefix, and no trailing text.
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != 32 {
		return Nil, fmt.Errorf("%w: want 32 hex digits, have %d characters", ErrInvalidFormat, len(s))
	}
	return Parse(s)
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	data, err := enc.DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromBytes(data)
}

// FromBytes creates a UUID from a 16-byte slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
