package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datakeep/internal/assets"
	"datakeep/internal/paths"
	"datakeep/internal/store"
)

func TestHandler_ServesBundleForFetchMode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "levels.json"), []byte(`{"n":4}`+"\n"), 0o600))

	srv := httptest.NewServer(newHandler(dir, "/assets/"))
	t.Cleanup(srv.Close)

	r := paths.New(paths.Options{DataRoot: t.TempDir(), BundledRoot: srv.URL + "/assets"})
	require.NoError(t, r.Configure("saves"))
	s, err := store.New(store.Options{Locator: r, Bundled: assets.NewFetchReader(srv.Client(), time.Second)})
	require.NoError(t, err)

	var out struct{ N int }
	require.NoError(t, s.Load(context.Background(), "levels.json", &out, store.LoadOptions{Bundled: true}))
	assert.Equal(t, 4, out.N)

	err = s.Load(context.Background(), "missing.json", &out, store.LoadOptions{Bundled: true})
	assert.True(t, store.IsAbsent(err))
}

func TestHandler_ReadOnly(t *testing.T) {
	srv := httptest.NewServer(newHandler(t.TempDir(), "/assets/"))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Post(srv.URL+"/assets/levels.json", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
