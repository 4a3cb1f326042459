package crypto

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/juju/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"datakeep/internal/domain"
)

// The current supported version of the sealed envelope format.
const sealedFormatVersion = 1

// envelope is the JSON structure carried, base64 encoded, in a sealed record.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// ScryptParams tunes key derivation for Sealed.
type ScryptParams struct {
	N, R, P int
}

// Upper bounds on the scrypt parameters Decrypt accepts from an envelope.
// Larger values would let a corrupt record demand gigabytes of memory.
const (
	maxScryptN = 1 << 20
	maxScryptR = 32
	maxScryptP = 16
)

// valid reports whether p is usable and within the accepted bounds.
func (p ScryptParams) valid() bool {
	return p.N > 1 && p.N <= maxScryptN && p.N&(p.N-1) == 0 &&
		p.R >= 1 && p.R <= maxScryptR &&
		p.P >= 1 && p.P <= maxScryptP
}

// DefaultScryptParams are the parameters used when none are given.
func DefaultScryptParams() ScryptParams { return ScryptParams{N: 1 << 15, R: 8, P: 1} }

// Sealed is an authenticated alternative to TripleDES. Each Encrypt draws a
// fresh salt, so output is not deterministic and tampering is detected.
type Sealed struct {
	secret string
	params ScryptParams
}

// NewSealed returns a Sealed codec. A zero params value selects the defaults.
func NewSealed(secret string, params ScryptParams) (*Sealed, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if params == (ScryptParams{}) {
		params = DefaultScryptParams()
	}
	if !params.valid() {
		return nil, errors.NotValidf("scrypt params %+v", params)
	}
	return &Sealed{secret: secret, params: params}, nil
}

// Encrypt seals plaintext and returns the base64 encoded envelope.
func (s *Sealed) Encrypt(plaintext string) (string, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", errors.Trace(err)
	}
	key, err := scrypt.Key([]byte(s.secret), salt[:], s.params.N, s.params.R, s.params.P, chacha20poly1305.KeySize)
	if err != nil {
		return "", errors.Annotate(err, "derive key")
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", errors.Trace(err)
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], []byte(plaintext), salt[:])

	b, err := json.Marshal(envelope{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      s.params.N,
		R:      s.params.R,
		P:      s.params.P,
		Cipher: ct,
	})
	if err != nil {
		return "", errors.Trace(err)
	}
	return B64(b), nil
}

// Decrypt opens a sealed envelope produced by Encrypt.
func (s *Sealed) Decrypt(ciphertext string) (string, error) {
	raw, err := unB64(ciphertext)
	if err != nil {
		return "", err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrongSecret, err)
	}
	if env.V > sealedFormatVersion {
		return "", errors.Errorf("unsupported sealed format version %d", env.V)
	}
	if len(env.Salt) == 0 || !(ScryptParams{N: env.N, R: env.R, P: env.P}).valid() {
		return "", ErrWrongSecret
	}

	key, err := scrypt.Key([]byte(s.secret), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrongSecret, err)
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return "", errors.Trace(err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return "", ErrWrongSecret
	}
	return string(pt), nil
}

var _ domain.Codec = (*Sealed)(nil)
