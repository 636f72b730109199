// Package storage holds the Redis connection backing the response cache.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

type Client struct {
	*redis.Client
}

func NewClient(opts Options) *Client {
	return &Client{
		Client: redis.NewClient(&redis.Options{
			Addr:        opts.Addr,
			Password:    opts.Password,
			DB:          opts.DB,
			DialTimeout: opts.DialTimeout,
		}),
	}
}

// Connect returns a client only once the server answers a ping.
func Connect(ctx context.Context, opts Options) (*Client, error) {
	const op = "storage.redis.Connect"

	c := NewClient(opts)
	if err := c.HealthCheck(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("%s: %s: %w", op, opts.Addr, err)
	}

	return c, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
