package assets

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/juju/errors"

	"datakeep/internal/domain"
)

// FileReader reads records directly from disk.
type FileReader struct{}

// Read returns the contents of the file at location.
func (FileReader) Read(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// FSReader reads records from an fs.FS. Locations are made relative to
// Prefix before lookup.
type FSReader struct {
	FS     fs.FS
	Prefix string
}

// Read returns the contents of the entry addressed by location.
func (r FSReader) Read(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(location, r.Prefix)
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if !fs.ValidPath(name) {
		return nil, errors.NotValidf("asset path %q", location)
	}
	return fs.ReadFile(r.FS, name)
}

var (
	_ domain.AssetReader = FileReader{}
	_ domain.AssetReader = FSReader{}
)
