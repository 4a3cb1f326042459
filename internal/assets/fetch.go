package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/juju/errors"

	"datakeep/internal/domain"
)

// DefaultFetchTimeout bounds a single fetch when no timeout is configured.
const DefaultFetchTimeout = 10 * time.Second

// FetchReader reads records with a blocking HTTP GET. Read returns only
// once the whole body has arrived, the request failed, or Timeout elapsed.
type FetchReader struct {
	HTTP    *http.Client
	Timeout time.Duration
}

// NewFetchReader returns a FetchReader using client (http.DefaultClient if
// nil) and timeout (DefaultFetchTimeout if zero).
func NewFetchReader(client *http.Client, timeout time.Duration) *FetchReader {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &FetchReader{HTTP: client, Timeout: timeout}
}

// Read fetches url and returns the response body.
func (r *FetchReader) Read(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Trace(err)
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("fetch %s: %w", url, fs.ErrNotExist)
	case resp.StatusCode/100 != 2:
		return nil, errors.Errorf("fetch %s: %s", url, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotatef(err, "fetch %s", url)
	}
	return b, nil
}

var _ domain.AssetReader = (*FetchReader)(nil)
