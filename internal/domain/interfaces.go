package domain

import "context"

// Codec is a reversible text transform applied to serialized payloads.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Serializer turns caller objects into bytes and back.
// Implementations must be synchronous and must not mutate their inputs.
type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// AssetReader reads the entire contents addressed by location.
// A missing record must be reported with an error matching os.ErrNotExist.
type AssetReader interface {
	Read(ctx context.Context, location string) ([]byte, error)
}

// Locator resolves record names against the configured roots.
type Locator interface {
	Root(root Root) string
	Locate(root Root, name string) string
}
