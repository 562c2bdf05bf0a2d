// Package xcache stores attack results between runs.
package xcache

import (
	"context"
	"fmt"
	"time"

	"gomod.pri/subcrack/xredis"
)

const (
	TypeNone   = "none"
	TypeMemory = "memory"
	TypeRedis  = "redis"
)

type Config struct {
	Type     string        `json:",default=none,options=none|memory|redis"`
	Capacity int           `json:",default=128"`
	TTL      time.Duration `json:",default=24h"`
	Prefix   string        `json:",default=subcrack:"`
	Redis    xredis.Config
}

// Cache is a byte store with per-entry expiry. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// New builds the cache described by cfg. It returns nil when caching is off.
func New(cfg Config) (Cache, error) {
	switch cfg.Type {
	case "", TypeNone:
		return nil, nil
	case TypeMemory:
		return NewMemory(cfg.Capacity, cfg.TTL), nil
	case TypeRedis:
		return NewRedis(xredis.NewClient(cfg.Redis), cfg.Prefix, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
