package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gomod.pri/subcrack/storage/local"
	"gomod.pri/subcrack/storage/obs"
	"gomod.pri/subcrack/storage/oss"
	"gomod.pri/subcrack/storage/s3"
	storagetypes "gomod.pri/subcrack/storage/types"
	"gomod.pri/subcrack/storage/web"
)

// Storage serves the read-only resources an attack needs: word lists and
// letter-frequency tables.
type Storage interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

func NewStorage(cfg storagetypes.Config) (Storage, error) {
	provider := storagetypes.StorageProvider(strings.ToLower(cfg.Provider))

	switch provider {
	case "", storagetypes.StorageProviderLocal:
		return local.NewClient(cfg), nil
	case storagetypes.StorageProviderS3:
		return s3.NewClient(cfg)
	case storagetypes.StorageProviderOBS:
		return obs.NewClient(cfg)
	case storagetypes.StorageProviderOSS:
		return oss.NewClient(cfg)
	case storagetypes.StorageProviderHTTP:
		return web.NewClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}
