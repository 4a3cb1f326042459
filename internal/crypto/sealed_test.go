package crypto_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datakeep/internal/crypto"
)

// Cheap scrypt parameters keep the suite fast.
var fastParams = crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}

func TestSealed_RoundTrip(t *testing.T) {
	s, err := crypto.NewSealed("pass", fastParams)
	require.NoError(t, err)

	ct, err := s.Encrypt(`{"level":3}`)
	require.NoError(t, err)
	pt, err := s.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, `{"level":3}`, pt)
}

func TestSealed_NotDeterministic(t *testing.T) {
	s, err := crypto.NewSealed("pass", fastParams)
	require.NoError(t, err)

	a, err := s.Encrypt("same")
	require.NoError(t, err)
	b, err := s.Encrypt("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSealed_WrongSecret(t *testing.T) {
	s, err := crypto.NewSealed("correct", fastParams)
	require.NoError(t, err)
	other, err := crypto.NewSealed("wrong", fastParams)
	require.NoError(t, err)

	ct, err := s.Encrypt("secret data")
	require.NoError(t, err)

	_, err = other.Decrypt(ct)
	assert.ErrorIs(t, err, crypto.ErrWrongSecret)
}

func TestSealed_RejectsTripleDESRecords(t *testing.T) {
	tdes := newTripleDES(t)
	s, err := crypto.NewSealed(testSecret, fastParams)
	require.NoError(t, err)

	ct, err := tdes.Encrypt(`{"a":1}`)
	require.NoError(t, err)

	_, err = s.Decrypt(ct)
	assert.ErrorIs(t, err, crypto.ErrWrongSecret)
}

func TestNewCodec(t *testing.T) {
	c, err := crypto.NewCodec("", testSecret)
	require.NoError(t, err)
	assert.IsType(t, &crypto.TripleDES{}, c)

	c, err = crypto.NewCodec(crypto.CodecSealed, testSecret)
	require.NoError(t, err)
	assert.IsType(t, &crypto.Sealed{}, c)

	_, err = crypto.NewCodec("rot13", testSecret)
	assert.Error(t, err)
}

// sealEnvelope builds a sealed record text from an envelope map.
func sealEnvelope(t *testing.T, env map[string]any) string {
	t.Helper()
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(b)
}

func openEnvelope(t *testing.T, ct string) map[string]any {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	env := map[string]any{}
	require.NoError(t, json.Unmarshal(b, &env))
	return env
}

func TestSealed_RejectsOutOfRangeParams(t *testing.T) {
	s, err := crypto.NewSealed("pass", fastParams)
	require.NoError(t, err)
	ct, err := s.Encrypt("data")
	require.NoError(t, err)

	cases := map[string]func(map[string]any){
		"huge N":        func(e map[string]any) { e["scrypt_N"] = int64(1) << 50; e["scrypt_r"] = 1; e["scrypt_p"] = 1 },
		"N above bound": func(e map[string]any) { e["scrypt_N"] = 1 << 21 },
		"N not pow2":    func(e map[string]any) { e["scrypt_N"] = 1000 },
		"huge r":        func(e map[string]any) { e["scrypt_r"] = 1 << 20 },
		"huge p":        func(e map[string]any) { e["scrypt_p"] = 1 << 20 },
		"zero p":        func(e map[string]any) { e["scrypt_p"] = 0 },
		"empty salt":    func(e map[string]any) { e["salt"] = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			env := openEnvelope(t, ct)
			mutate(env)

			_, err := s.Decrypt(sealEnvelope(t, env))

			assert.ErrorIs(t, err, crypto.ErrWrongSecret)
		})
	}
}

func TestSealed_TamperedCipher(t *testing.T) {
	s, err := crypto.NewSealed("pass", fastParams)
	require.NoError(t, err)
	ct, err := s.Encrypt("data")
	require.NoError(t, err)

	env := openEnvelope(t, ct)
	raw, err := base64.StdEncoding.DecodeString(env["cipher"].(string))
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	env["cipher"] = base64.StdEncoding.EncodeToString(raw)

	_, err = s.Decrypt(sealEnvelope(t, env))
	assert.ErrorIs(t, err, crypto.ErrWrongSecret)
}

func TestNewSealed_RejectsOutOfRangeParams(t *testing.T) {
	_, err := crypto.NewSealed("pass", crypto.ScryptParams{N: 1 << 30, R: 8, P: 1})
	assert.Error(t, err)
}
