package crypto

import "runtime"

// Wipe zeroes each buffer. This is best-effort: it keeps the buffers live
// past the loop so the writes are not elided, but cannot reach copies the
// runtime may have made.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}
