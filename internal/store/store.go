package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/juju/loggo/v2"

	"datakeep/internal/assets"
	"datakeep/internal/domain"
)

var logger = loggo.GetLogger("datakeep.store")

const recordMode os.FileMode = 0o600

// Options wires a Store's collaborators.
type Options struct {
	// Locator is required.
	Locator domain.Locator
	// Codec is used when SaveOptions.Encrypt or LoadOptions.Decrypt is set.
	Codec domain.Codec
	// Serializer defaults to JSONSerializer{}.
	Serializer domain.Serializer
	// Bundled reads the bundled root. Defaults to assets.FileReader.
	Bundled domain.AssetReader
	// AllowBundledWrites lets Save target the bundled root when it is a
	// local directory, as asset-authoring tools need. Off by default.
	AllowBundledWrites bool
}

// SaveOptions selects the root and encryption for Save.
type SaveOptions struct {
	Bundled bool
	Encrypt bool
}

// LoadOptions selects the root and decryption for Load.
type LoadOptions struct {
	Bundled bool
	Decrypt bool
}

// Store saves and loads records. Calls are serialized by an internal lock.
type Store struct {
	loc                domain.Locator
	codec              domain.Codec
	ser                domain.Serializer
	readers            map[domain.Root]domain.AssetReader
	allowBundledWrites bool

	mu sync.Mutex
}

// New returns a Store. The writable root is always read directly from disk.
func New(opts Options) (*Store, error) {
	if opts.Locator == nil {
		return nil, ErrNoLocator
	}
	ser := opts.Serializer
	if ser == nil {
		ser = JSONSerializer{}
	}
	bundled := opts.Bundled
	if bundled == nil {
		bundled = assets.FileReader{}
	}
	return &Store{
		loc:   opts.Locator,
		codec: opts.Codec,
		ser:   ser,
		readers: map[domain.Root]domain.AssetReader{
			domain.WritableData:    assets.FileReader{},
			domain.BundledReadOnly: bundled,
		},
		allowBundledWrites: opts.AllowBundledWrites,
	}, nil
}

// Save serializes v, optionally encrypts it, and overwrites the record name.
//
// Once the root checks pass, the record file is created empty before the
// value is serialized, so it exists afterwards even if serialization,
// encryption or the write fails.
func (s *Store) Save(name string, v any, opts SaveOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := domain.RootFor(opts.Bundled)
	path := s.loc.Locate(root, name)
	fail := func(kind Kind, err error) error {
		return s.fail(&Error{Kind: kind, Op: "save", Root: root, Path: path, Err: err})
	}

	base := s.loc.Root(root)
	switch {
	case base == "":
		return fail(PathError, ErrNotConfigured)
	case root == domain.BundledReadOnly && !s.allowBundledWrites:
		return fail(IOError, ErrReadOnlyRoot)
	case !isDir(base):
		return fail(PathError, &fs.PathError{Op: "stat", Path: base, Err: fs.ErrNotExist})
	}

	if err := createIfAbsent(path, recordMode); err != nil {
		return fail(IOError, err)
	}

	data, err := s.ser.Marshal(v)
	if err != nil {
		return fail(SerializationError, err)
	}
	payload := string(data)
	if opts.Encrypt {
		if s.codec == nil {
			return fail(CipherError, ErrNoCodec)
		}
		if payload, err = s.codec.Encrypt(payload); err != nil {
			return fail(CipherError, err)
		}
	}

	if err := writeFile(path, []byte(payload+"\n"), recordMode); err != nil {
		return fail(IOError, err)
	}
	logger.Infof("saved %s record %q", root, name)
	return nil
}

// Load reads the record name, optionally decrypts it, and decodes it into
// out, which must be a non-nil pointer. out is left untouched on failure.
func (s *Store) Load(ctx context.Context, name string, out any, opts LoadOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := domain.RootFor(opts.Bundled)
	path := s.loc.Locate(root, name)
	fail := func(kind Kind, err error) error {
		return s.fail(&Error{Kind: kind, Op: "load", Root: root, Path: path, Err: err})
	}

	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fail(SerializationError, ErrInvalidTarget)
	}
	if s.loc.Root(root) == "" {
		return fail(PathError, ErrNotConfigured)
	}

	raw, err := s.readers[root].Read(ctx, path)
	if err != nil {
		return fail(IOError, err)
	}
	text := strings.TrimSpace(string(raw))
	if opts.Decrypt {
		if s.codec == nil {
			return fail(CipherError, ErrNoCodec)
		}
		if text, err = s.codec.Decrypt(text); err != nil {
			return fail(CipherError, err)
		}
		text = strings.TrimSpace(text)
	}

	fresh := reflect.New(target.Elem().Type())
	if err := s.ser.Unmarshal([]byte(text), fresh.Interface()); err != nil {
		return fail(SerializationError, err)
	}
	target.Elem().Set(fresh.Elem())
	logger.Infof("loaded %s record %q", root, name)
	return nil
}

// Exists reports whether the record name is present in the selected root.
func (s *Store) Exists(ctx context.Context, name string, bundled bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := domain.RootFor(bundled)
	if s.loc.Root(root) == "" {
		return false, &Error{Kind: PathError, Op: "exists", Root: root, Err: ErrNotConfigured}
	}
	path := s.loc.Locate(root, name)
	if root == domain.WritableData {
		_, err := os.Stat(path)
		return statResult(root, path, err)
	}
	_, err := s.readers[root].Read(ctx, path)
	return statResult(root, path, err)
}

func statResult(root domain.Root, path string, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, &Error{Kind: IOError, Op: "exists", Root: root, Path: path, Err: err}
	}
}

// Remove deletes the record name from the writable root. Removing a record
// that does not exist is not an error.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := domain.WritableData
	if s.loc.Root(root) == "" {
		return s.fail(&Error{Kind: PathError, Op: "remove", Root: root, Err: ErrNotConfigured})
	}
	path := s.loc.Locate(root, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s.fail(&Error{Kind: IOError, Op: "remove", Root: root, Path: path, Err: err})
	}
	logger.Infof("removed %s record %q", root, name)
	return nil
}

// fail logs err and returns it. Missing records on load are routine, so
// they are logged at debug level.
func (s *Store) fail(err *Error) error {
	if IsAbsent(err) {
		logger.Debugf("%v", err)
	} else {
		logger.Warningf("%v", err)
	}
	return err
}

// LoadAs loads the record name into a new T. ok is false when the load failed
// for any reason; err says why.
func LoadAs[T any](ctx context.Context, s *Store, name string, opts LoadOptions) (v T, ok bool, err error) {
	if err = s.Load(ctx, name, &v, opts); err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}
