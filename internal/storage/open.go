package storage

import (
	"context"
	"fmt"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/db"
)

// Open constructs the document backend selected by cfg.Data.Backend.
func Open(ctx context.Context, cfg config.Config) (*Storage, error) {
	var (
		backend ObjectStorage
		err     error
	)

	switch cfg.Data.Backend {
	case "", config.BackendFS:
		backend, err = NewFSClient(cfg.Data.Dir)
	case config.BackendMinio:
		backend, err = NewMinioClient(cfg.Minio)
	case config.BackendGCS:
		backend, err = NewGCSClient(ctx, cfg.GCS)
	case config.BackendPostgres:
		conn, openErr := db.Open(ctx, cfg.Database)
		if openErr != nil {
			return nil, fmt.Errorf("connect postgres: %w", openErr)
		}
		backend, err = NewPostgresClient(conn)
	default:
		return nil, fmt.Errorf("unknown data backend %q", cfg.Data.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s backend: %w", cfg.Data.Backend, err)
	}

	return NewStorage(backend, cfg.Data.Prefix), nil
}
