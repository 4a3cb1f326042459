package crypto

import (
	"crypto/md5" // #nosec G501 -- key derivation must match existing records
)

// KeySize is the length of the digest DeriveKey returns.
const KeySize = md5.Size

// DeriveKey hashes the UTF-8 bytes of secret into a 16-byte key.
// The same secret always yields the same key.
func DeriveKey(secret string) []byte {
	sum := md5.Sum([]byte(secret)) // #nosec G401
	return sum[:]
}

// tripleKey expands a 16-byte two-key TripleDES key to the K1|K2|K1 form
// crypto/des expects.
func tripleKey(k []byte) []byte {
	out := make([]byte, 0, 24)
	out = append(out, k[:16]...)
	return append(out, k[:8]...)
}
