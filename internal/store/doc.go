// Package store persists caller objects as single-line text records on disk.
//
// A record is one file under either the writable data root or the bundled
// read-only root. Its payload is the serialized object, optionally passed
// through a domain.Codec. Whether a record is encrypted is not stored in the
// file: Load must be given the same flag Save used.
//
// Every failure is returned as an *Error carrying a Kind (PathError, IOError,
// CipherError or SerializationError) and is also logged. A Load of a record
// that was never saved fails with IsAbsent(err) == true, which callers should
// treat as "no data yet".
package store
