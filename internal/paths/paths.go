package paths

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	"datakeep/internal/domain"
)

var logger = loggo.GetLogger("datakeep.paths")

// Options describes the platform roots a Resolver derives its paths from.
type Options struct {
	// DataRoot is the platform persistent-data root. Empty means
	// os.UserConfigDir().
	DataRoot string
	// BundledRoot is the fixed read-only assets root. It may be a directory
	// or a URL when bundled assets are fetched rather than read from disk.
	BundledRoot string
}

// Resolver holds the two storage roots. Configure may be called again; the
// new roots apply to every later lookup.
type Resolver struct {
	opts Options

	mu       sync.RWMutex
	writable string
	bundled  string
}

// New returns an unconfigured Resolver.
func New(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// Configure sets the writable root to <data root>/<subfolder>, creating it if
// needed, and sets the bundled root from Options without touching disk.
//
// A failure to create the writable root is logged and returned, but the roots
// are still recorded so later operations fail individually.
func (r *Resolver) Configure(subfolder string) error {
	dataRoot, err := r.dataRoot()
	writable := filepath.Join(dataRoot, subfolder)

	r.mu.Lock()
	r.writable = writable
	r.bundled = r.opts.BundledRoot
	r.mu.Unlock()

	if err != nil {
		logger.Warningf("resolving data root: %v", err)
		return errors.Annotate(err, "resolve data root")
	}
	if err := os.MkdirAll(writable, 0o700); err != nil {
		logger.Warningf("creating writable root %q: %v", writable, err)
		return errors.Annotatef(err, "create writable root %q", writable)
	}
	logger.Debugf("writable root %q, bundled root %q", writable, r.opts.BundledRoot)
	return nil
}

func (r *Resolver) dataRoot() (string, error) {
	if r.opts.DataRoot != "" {
		return r.opts.DataRoot, nil
	}
	return os.UserConfigDir()
}

// Writable returns the writable data root.
func (r *Resolver) Writable() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writable
}

// Bundled returns the bundled read-only root.
func (r *Resolver) Bundled() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bundled
}

// Root returns the base path of root.
func (r *Resolver) Root(root domain.Root) string {
	if root == domain.BundledReadOnly {
		return r.Bundled()
	}
	return r.Writable()
}

// Locate joins name onto the base of root. For URL roots each segment of
// name is path-escaped.
// Names are not validated; callers must not pass path-escaping names.
func (r *Resolver) Locate(root domain.Root, name string) string {
	base := r.Root(root)
	if IsURL(base) {
		segs := strings.Split(name, "/")
		for i, seg := range segs {
			segs[i] = url.PathEscape(seg)
		}
		return strings.TrimSuffix(base, "/") + "/" + strings.Join(segs, "/")
	}
	return filepath.Join(base, name)
}

// IsURL reports whether p looks like an http(s) URL rather than a path.
func IsURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

var _ domain.Locator = (*Resolver)(nil)
