package store

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/devfolio/apiserver/internal/logger"
	"github.com/devfolio/apiserver/internal/storage"
)

const contentTypeJSON = "application/json"

// Writer is the write side of the object storage, used when publishing.
type Writer interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

// Publish copies every document from src to dst. Documents are checked to be
// valid JSON before anything is uploaded, so a broken set is never published.
func Publish(ctx context.Context, src Reader, dst Writer, log *logger.Logger) error {
	bodies := make(map[string][]byte, len(DocumentKeys))
	for _, key := range DocumentKeys {
		body, err := read(ctx, src, key)
		if err != nil {
			return err
		}
		if !json.Valid(body) {
			return errors.Errorf("document %s is not valid JSON", key)
		}
		bodies[key] = body
	}

	if err := dst.EnsureBucket(ctx); err != nil {
		return errors.Wrap(err, "failed to prepare destination")
	}

	for _, key := range DocumentKeys {
		body := bodies[key]
		if err := dst.Put(ctx, key, bytes.NewReader(body), int64(len(body)), contentTypeJSON); err != nil {
			return errors.Wrapf(err, "failed to upload document %s", key)
		}
		log.Info("document published", "key", key, "bytes", len(body))
	}
	return nil
}

// Deleter is the delete side of the object storage, used when unpublishing.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// Unpublish removes every document from dst. Documents that are already
// absent are skipped, so an interrupted run can simply be repeated.
func Unpublish(ctx context.Context, dst Deleter, log *logger.Logger) error {
	for _, key := range DocumentKeys {
		err := dst.Delete(ctx, key)
		switch {
		case errors.Is(err, storage.ErrObjectNotFound):
			log.Debug("document already absent", "key", key)
		case err != nil:
			return errors.Wrapf(err, "failed to delete document %s", key)
		default:
			log.Info("document unpublished", "key", key)
		}
	}
	return nil
}

func read(ctx context.Context, r Reader, key string) ([]byte, error) {
	rc, err := r.Get(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", key)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read document %s", key)
	}
	return body, nil
}
