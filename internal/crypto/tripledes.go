package crypto

import (
	"crypto/cipher"
	"crypto/des" // #nosec G502 -- on-disk format compatibility
	"unicode/utf8"

	"github.com/juju/errors"

	"datakeep/internal/domain"
)

// TripleDES encrypts payloads with two-key TripleDES in ECB mode and PKCS#7
// padding, derived from a fixed secret. Output is standard base64.
//
// ECB has no IV: identical plaintexts give identical ciphertexts and equal
// 8-byte blocks encrypt to equal blocks.
type TripleDES struct {
	secret string
}

// NewTripleDES returns a TripleDES codec for secret. Any string, including
// the empty one, is hashed into a key.
func NewTripleDES(secret string) (*TripleDES, error) {
	return &TripleDES{secret: secret}, nil
}

// Encrypt returns base64(ECB-TripleDES(pkcs7(utf8(plaintext)))).
func (c *TripleDES) Encrypt(plaintext string) (string, error) {
	block, wipe, err := c.block()
	if err != nil {
		return "", err
	}
	defer wipe()

	data := pad([]byte(plaintext), block.BlockSize())
	out := make([]byte, len(data))
	ecb(block.Encrypt, out, data, block.BlockSize())
	return B64(out), nil
}

// Decrypt reverses Encrypt. It distinguishes malformed base64, a length that
// is not block aligned and bad padding.
func (c *TripleDES) Decrypt(ciphertext string) (string, error) {
	data, err := unB64(ciphertext)
	if err != nil {
		return "", err
	}
	block, wipe, err := c.block()
	if err != nil {
		return "", err
	}
	defer wipe()

	bs := block.BlockSize()
	if len(data) == 0 || len(data)%bs != 0 {
		return "", ErrBlockSize
	}
	out := make([]byte, len(data))
	ecb(block.Decrypt, out, data, bs)
	pt, err := unpad(out, bs)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(pt) {
		return "", ErrNotText
	}
	return string(pt), nil
}

// block derives the key and builds the cipher. The returned func wipes the
// key material.
func (c *TripleDES) block() (cipher.Block, func(), error) {
	k := DeriveKey(c.secret)
	key := tripleKey(k)
	wipe := func() { Wipe(k, key) }
	b, err := des.NewTripleDESCipher(key)
	if err != nil {
		wipe()
		return nil, nil, errors.Annotate(err, "tripledes")
	}
	return b, wipe, nil
}

// ecb applies fn to each block of src independently.
func ecb(fn func(dst, src []byte), dst, src []byte, bs int) {
	for i := 0; i < len(src); i += bs {
		fn(dst[i:i+bs], src[i:i+bs])
	}
}

var _ domain.Codec = (*TripleDES)(nil)
