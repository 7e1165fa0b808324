// Package redis wraps the go-redis client behind a small interface so
// the resolution cache can be tested against miniredis or a mock.
package redis

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the subset-carrying alias for redis.UniversalClient used
// throughout the repository layer.
type Client interface {
	redis.UniversalClient
}

// Options configures client behavior. The zero value is fine for a
// local cache.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a client for a single Redis instance. Connection is
// lazy; a bad endpoint surfaces on first use.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}
