package store

import (
	"errors"
	"fmt"
	"io/fs"

	jujuerrors "github.com/juju/errors"

	"datakeep/internal/domain"
)

// Kind classifies a store failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// PathError means a storage root is unusable: not configured, or its
	// directory is missing.
	PathError
	// IOError means the record could not be created, read or written, or the
	// bundled fetch failed. A missing record on Load is an IOError.
	IOError
	// CipherError means encryption or decryption failed, usually because the
	// encrypt/decrypt flag or the secret does not match the record.
	CipherError
	// SerializationError means the payload is not valid for the target shape.
	SerializationError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case PathError:
		return "path error"
	case IOError:
		return "io error"
	case CipherError:
		return "cipher error"
	case SerializationError:
		return "serialization error"
	default:
		return "unknown error"
	}
}

const (
	// ErrReadOnlyRoot is returned when saving to a root that does not accept writes.
	ErrReadOnlyRoot = jujuerrors.ConstError("storage root is read-only")

	// ErrNotConfigured is returned when a root has no base path.
	ErrNotConfigured = jujuerrors.ConstError("storage root is not configured")

	// ErrNoCodec is returned when encryption is requested without a codec.
	ErrNoCodec = jujuerrors.ConstError("no codec configured")

	// ErrNoLocator is returned by New when Options.Locator is nil.
	ErrNoLocator = jujuerrors.ConstError("store requires a locator")

	// ErrInvalidTarget is returned when Load is given a nil or non-pointer target.
	ErrInvalidTarget = jujuerrors.ConstError("load target must be a non-nil pointer")
)

// Error describes a failed store operation.
type Error struct {
	Kind Kind
	Op   string
	Root domain.Root
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s record %q: %s: %v", e.Op, e.Root, e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsAbsent reports whether err means the record does not exist yet.
func IsAbsent(err error) bool {
	return KindOf(err) == IOError && errors.Is(err, fs.ErrNotExist)
}
