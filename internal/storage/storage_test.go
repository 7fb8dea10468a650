package storage_test

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

	"tenant-bulk-import/internal/storage"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("store then fetch round trips the content", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), time.Second)
		require.NoError(t, err)

		url, err := store.Store(ctx, "users.csv", strings.NewReader("name,email\nJane,jane@example.com\n"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "file://"))
		assert.True(t, strings.HasSuffix(url, "-users.csv"))

		text, err := store.Fetch(ctx, url)
		require.NoError(t, err)
		assert.Equal(t, "name,email\nJane,jane@example.com\n", text)
	})

	t.Run("same content gets the same key", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), time.Second)
		require.NoError(t, err)

		a, err := store.Store(ctx, "a.csv", strings.NewReader("x"))
		require.NoError(t, err)
		b, err := store.Store(ctx, "a.csv", strings.NewReader("x"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unsafe names are sanitized and no temp files remain", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(dir, time.Second)
		require.NoError(t, err)

		url, err := store.Store(ctx, "../../etc/my file.csv", strings.NewReader("x"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, "-my_file.csv"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("refuses file URLs outside the directory", func(t *testing.T) {
		dir := t.TempDir()
		store, err := storage.NewLocalStore(filepath.Join(dir, "blobs"), time.Second)
		require.NoError(t, err)

		outside := filepath.Join(dir, "secret.csv")
		require.NoError(t, os.WriteFile(outside, []byte("x"), 0o600))

		_, err = store.Fetch(ctx, "file://"+filepath.ToSlash(outside))
		assert.ErrorIs(t, err, storage.ErrOutsideStore)
	})

	t.Run("fetches http URLs", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing.csv" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte("sku,name,price\nA,B,1\n"))
		}))
		defer srv.Close()

		store, err := storage.NewLocalStore(t.TempDir(), time.Second)
		require.NoError(t, err)

		text, err := store.Fetch(ctx, srv.URL+"/products.csv")
		require.NoError(t, err)
		assert.Equal(t, "sku,name,price\nA,B,1\n", text)

		_, err = store.Fetch(ctx, srv.URL+"/missing.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("rejects unknown schemes", func(t *testing.T) {
		store, err := storage.NewLocalStore(t.TempDir(), time.Second)
		require.NoError(t, err)

		_, err = store.Fetch(ctx, "s3://bucket/key.csv")
		assert.Error(t, err)
	})
}
