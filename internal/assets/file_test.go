package assets_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datakeep/internal/assets"
)

func TestFileReader_Read(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rec.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"a":1}`), 0o600))

	b, err := assets.FileReader{}.Read(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(b))
}

func TestFileReader_Missing(t *testing.T) {
	_, err := assets.FileReader{}.Read(context.Background(), filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := assets.FileReader{}.Read(ctx, "whatever")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSReader_Read(t *testing.T) {
	fsys := fstest.MapFS{
		"levels.json":     {Data: []byte(`[1,2,3]`)},
		"sub/config.json": {Data: []byte(`{}`)},
	}
	r := assets.FSReader{FS: fsys, Prefix: "bundle"}

	b, err := r.Read(context.Background(), "bundle/levels.json")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(b))

	b, err = r.Read(context.Background(), "bundle/sub/config.json")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))

	_, err = r.Read(context.Background(), "bundle/missing.json")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
