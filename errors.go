package uuid4

import "errors"

var (
	// ErrInvalidFormat indicates that the UUID text could not be decoded
	ErrInvalidFormat = errors.New("uuid4: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid4: invalid UUID length (expected 16 bytes)")

	// ErrEntropyUnavailable indicates that the entropy source could not
	// provide seed material. A generator cannot be built without it.
	ErrEntropyUnavailable = errors.New("uuid4: entropy source unavailable")
)
