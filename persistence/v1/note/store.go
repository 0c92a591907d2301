package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
)

// Store keeps serialized notes, in insertion order, in a single redis list
type Store struct {
	client redis.UniversalClient
	cfg    Config
}

func NewStore(client redis.UniversalClient, cfg Config) *Store {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	return &Store{client: client, cfg: cfg}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// ReadAll returns every entry, oldest first. An absent key is an empty list.
func (s *Store) ReadAll(ctx context.Context) ([]string, error) {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	entries, err := s.client.LRange(opCtx, s.cfg.Key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.cfg.Key, err)
	}
	return entries, nil
}

// Append adds the entries to the tail, keeping their order
func (s *Store) Append(ctx context.Context, entries ...string) error {
	if len(entries) == 0 {
		return nil
	}

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.RPush(opCtx, s.cfg.Key, values(entries)...).Err(); err != nil {
		return fmt.Errorf("failed to append to %s: %w", s.cfg.Key, err)
	}
	return nil
}

// Clear removes the whole list
func (s *Store) Clear(ctx context.Context) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.client.Del(opCtx, s.cfg.Key).Err(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", s.cfg.Key, err)
	}
	return nil
}

// Count returns the number of entries
func (s *Store) Count(ctx context.Context) (int64, error) {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.client.LLen(opCtx, s.cfg.Key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.cfg.Key, err)
	}
	return n, nil
}

// Rewrite replaces the list with what fn keeps from it.
//
// The read and the replacement run inside a WATCH on the key, so a write made by
// someone else in between aborts the replacement and fn runs again on the new
// contents. After MaxRetries aborted attempts ErrConflict is returned. When fn keeps
// as many entries as it got, nothing is written.
func (s *Store) Rewrite(ctx context.Context, fn func(entries []string) ([]string, error)) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	txf := func(tx *redis.Tx) error {
		entries, err := tx.LRange(opCtx, s.cfg.Key, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.cfg.Key, err)
		}

		kept, err := fn(entries)
		if err != nil {
			return err
		}
		if len(kept) == len(entries) {
			return nil
		}

		_, err = tx.TxPipelined(opCtx, func(pipe redis.Pipeliner) error {
			pipe.Del(opCtx, s.cfg.Key)
			if len(kept) > 0 {
				pipe.RPush(opCtx, s.cfg.Key, values(kept)...)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to replace %s: %w", s.cfg.Key, err)
		}
		return nil
	}

	for i := 0; i < s.cfg.MaxRetries; i++ {
		err := s.client.Watch(opCtx, txf, s.cfg.Key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return ErrConflict
}

func values(entries []string) []interface{} {
	v := make([]interface{}, len(entries))
	for i, e := range entries {
		v[i] = e
	}
	return v
}

// Ping checks the server answers
func (s *Store) Ping(ctx context.Context) error {
	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.client.Ping(opCtx).Err()
}
