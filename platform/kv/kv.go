// Package kv opens the redis connection holding the notes list.
package kv

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

// Config holds what is needed to reach redis
type Config struct {
	Addr        string
	User        string
	Pass        string
	PingTimeout time.Duration
}

// Open creates the client and checks the server answers a PING within PingTimeout
func Open(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.User,
		Password: cfg.Pass,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}

	return rdb, nil
}
