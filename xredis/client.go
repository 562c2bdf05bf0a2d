package xredis

import (
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string `json:",default=127.0.0.1:6379"`
	Password string `json:",optional"`
	DB       int    `json:",optional"`
}

// NewClient returns a client with TracingHook installed.
func NewClient(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	client.AddHook(TracingHook{})
	return client
}
