package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FSClient serves objects from a directory on the local filesystem.
type FSClient struct {
	root string
}

// NewFSClient constructs a filesystem backend rooted at dir.
func NewFSClient(dir string) (*FSClient, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is required")
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &FSClient{root: root}, nil
}

// EnsureBucket creates the root directory if needed.
func (f *FSClient) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(f.root, 0o755)
}

// Put writes an object to disk, creating parent directories.
func (f *FSClient) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	target, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	file, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, r); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Get opens an object for reading.
func (f *FSClient) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	target, err := f.path(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return file, nil
}

// Delete removes an object from disk.
func (f *FSClient) Delete(ctx context.Context, key string) error {
	target, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return err
	}
	return nil
}

// Bucket returns the root directory.
func (f *FSClient) Bucket() string {
	return f.root
}

func (f *FSClient) Close() error {
	return nil
}

// path resolves key below the root and rejects keys escaping it.
func (f *FSClient) path(key string) (string, error) {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", errors.New("invalid object key")
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}
