package crypto

import (
	"github.com/juju/errors"

	"datakeep/internal/domain"
)

// Codec names accepted by NewCodec.
const (
	CodecTripleDES = "tripledes"
	CodecSealed    = "sealed"
)

// NewCodec builds the codec registered under name. An empty name selects
// TripleDES so records written by earlier releases stay readable.
func NewCodec(name, secret string) (domain.Codec, error) {
	switch name {
	case "", CodecTripleDES:
		return NewTripleDES(secret)
	case CodecSealed:
		return NewSealed(secret, ScryptParams{})
	default:
		return nil, errors.NotValidf("cipher %q", name)
	}
}
