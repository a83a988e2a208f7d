package uuid4

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122.
// The 16 bytes are kept in RFC field order: time-low (0-3), time-mid (4-5),
// time-hi-and-version (6-7), clock-seq-and-reserved (8-9) and node (10-15).
// Two UUIDs are equal exactly when their bytes are equal, so UUID can be
// used directly as a map key.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	_
	VersionTimeSorted
	VersionCustom
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	}
	return fmt.Sprintf("Variant(%d)", byte(v))
}

// Nil is the nil UUID (all zeros)
var Nil UUID

// Version returns the version of the UUID, the high nibble of byte 6.
// Generated UUIDs are always VersionRandom; parsed ones may carry any version.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID, read from the top bits of byte 8.
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeCanonical(buf[:], u)
	return string(buf[:])
}

// URN returns the UUID in urn:uuid: form.
func (u UUID) URN() string {
	var buf [9 + 36]byte
	copy(buf[:], urnPrefix)
	encodeCanonical(buf[9:], u)
	return string(buf[:])
}

// encodeCanonical writes the 36 characters of the canonical form into dst.
// Group boundaries are the same ones Parse skips dashes at.
func encodeCanonical(dst []byte, u UUID) {
	pos := 0
	for i, n := range groupSizes {
		if i > 0 {
			dst[pos] = '-'
			pos++
		}
		start := groupStarts[i]
		hex.Encode(dst[pos:pos+2*n], u[start:start+n])
		pos += 2 * n
	}
}

// Bytes returns a copy of the UUID as a byte slice
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Equal returns true if u and other hold the same 16 bytes
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Compare returns an integer comparing two UUIDs lexicographically by byte.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := range u {
		switch {
		case u[i] < other[i]:
			return -1
		case u[i] > other[i]:
			return 1
		}
	}
	return 0
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	buf := make([]byte, 36)
	encodeCanonical(buf, u)
	return buf, nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Every form Parse accepts is accepted here.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	id, err := FromBytes(data)
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// Scan implements the sql.Scanner interface. Columns may hold the raw
// 16 bytes (BINARY(16)) or any text form Parse accepts. A NULL column
// leaves u unchanged.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		switch len(src) {
		case 0:
			return nil
		case 16:
			copy(u[:], src)
			return nil
		}
		return u.UnmarshalText(src)
	default:
		return fmt.Errorf("uuid4: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface, storing the canonical string.
// Use Bytes for BINARY(16) columns.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}
