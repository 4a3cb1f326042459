package crypto

import "github.com/juju/errors"

const (
	// ErrInvalidBase64 is returned when ciphertext text is not standard base64.
	ErrInvalidBase64 = errors.ConstError("ciphertext is not valid base64")

	// ErrBlockSize is returned when decoded ciphertext is not a whole number
	// of cipher blocks.
	ErrBlockSize = errors.ConstError("ciphertext is not a multiple of the block size")

	// ErrPadding is returned when PKCS#7 padding is invalid after decryption.
	// A wrong key produces the same error.
	ErrPadding = errors.ConstError("invalid padding (wrong key or corrupted data)")

	// ErrNotText is returned when decrypted bytes are not valid UTF-8.
	ErrNotText = errors.ConstError("decrypted payload is not valid UTF-8")

	// ErrWrongSecret is returned by Sealed when authentication fails.
	ErrWrongSecret = errors.ConstError("wrong secret or corrupted record")

	// ErrEmptySecret is returned when Sealed is built without a secret.
	ErrEmptySecret = errors.ConstError("secret must not be empty")
)
