package domain

// Root identifies one of the two storage locations a record can live in.
type Root int

const (
	// WritableData is the per-application read-write data directory.
	WritableData Root = iota
	// BundledReadOnly is the ship-time assets location. It is never created,
	// deleted or (by default) written to.
	BundledReadOnly
)

// String implements fmt.Stringer.
func (r Root) String() string {
	switch r {
	case WritableData:
		return "writable"
	case BundledReadOnly:
		return "bundled"
	default:
		return "unknown"
	}
}

// RootFor maps the bundled flag used by save/load calls to a Root.
func RootFor(bundled bool) Root {
	if bundled {
		return BundledReadOnly
	}
	return WritableData
}
