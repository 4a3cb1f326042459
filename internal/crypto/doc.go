// Package crypto implements the payload codecs used by datakeep.
//
// Contents
//
//   - Key derivation from the process-wide secret (DeriveKey)
//   - TripleDES in ECB mode with PKCS#7 padding, base64 text output (TripleDES)
//   - An opt-in authenticated codec, scrypt + ChaCha20-Poly1305 (Sealed)
//   - Best-effort memory wiping for key material (Wipe)
//
// # Notes
//
// TripleDES/ECB is kept for compatibility with records already on disk. It is
// deterministic and leaks repeated 8-byte blocks; it offers no integrity.
// Sealed records are not readable by TripleDES and vice versa, so switching
// codecs requires re-saving every encrypted record.
package crypto
