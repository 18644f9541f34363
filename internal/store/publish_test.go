package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/storage"
)

type recordingWriter struct {
	ensured bool
	puts    int
}

func (w *recordingWriter) EnsureBucket(ctx context.Context) error {
	w.ensured = true
	return nil
}

func (w *recordingWriter) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	w.puts++
	return nil
}

func TestPublish_CopiesDocuments(t *testing.T) {
	src := t.TempDir()
	writeDocuments(t, src, map[string]string{
		KeyProfile: `{"personal": {"full_name": "Alex Rivera"}}`,
	})
	dstDir := filepath.Join(t.TempDir(), "published")
	client, err := storage.NewFSClient(dstDir)
	require.NoError(t, err)
	dst := storage.NewStorage(client, "v1")

	require.NoError(t, Publish(context.Background(), newFSReader(t, src), dst, logger.Nop()))

	for _, key := range DocumentKeys {
		_, err := os.Stat(filepath.Join(dstDir, "v1", filepath.FromSlash(key)))
		assert.NoError(t, err, key)
	}

	repo, err := Load(context.Background(), dst, logger.Nop())
	require.NoError(t, err)
	profile, err := repo.Profile(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `"Alex Rivera"`, string(profile.Personal.FullName))
}

func TestPublish_RejectsBrokenSet(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{name: "missing document", overrides: map[string]string{KeyTraffic: ""}},
		{name: "invalid json", overrides: map[string]string{KeyErrorLogs: `{"recent": [`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := t.TempDir()
			writeDocuments(t, src, tt.overrides)
			dst := &recordingWriter{}

			err := Publish(context.Background(), newFSReader(t, src), dst, logger.Nop())

			require.Error(t, err)
			assert.False(t, dst.ensured)
			assert.Zero(t, dst.puts)
		})
	}
}

func TestUnpublish_RemovesDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDocuments(t, dir, map[string]string{KeyTraffic: ""})
	client, err := storage.NewFSClient(dir)
	require.NoError(t, err)
	dst := storage.NewStorage(client, "")

	require.NoError(t, Unpublish(context.Background(), dst, logger.Nop()))

	for _, key := range DocumentKeys {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
		assert.True(t, os.IsNotExist(err), key)
	}

	require.NoError(t, Unpublish(context.Background(), dst, logger.Nop()), "repeat run")
}

type brokenDeleter struct{ calls int }

func (d *brokenDeleter) Delete(ctx context.Context, key string) error {
	d.calls++
	return errors.New("permission denied")
}

func TestUnpublish_StopsOnBackendError(t *testing.T) {
	dst := &brokenDeleter{}

	err := Unpublish(context.Background(), dst, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete document "+DocumentKeys[0])
	assert.Equal(t, 1, dst.calls)
}
