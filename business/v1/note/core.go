// Package note holds the rules for creating, listing and deleting notes.
package note

import (
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"time"
)

// Storer is the list of serialized notes the core works on
type Storer interface {
	ReadAll(ctx context.Context) ([]string, error)
	Append(ctx context.Context, entries ...string) error
	Rewrite(ctx context.Context, fn func(entries []string) ([]string, error)) error
}

// Core handles the note operations on top of a Storer
type Core struct {
	log   *zap.SugaredLogger
	store Storer
	now   func() time.Time
}

func NewCore(log *zap.SugaredLogger, store Storer) *Core {
	return &Core{
		log:   log,
		store: store,
		now:   time.Now,
	}
}

func decode(entry string) (Note, error) {
	var n Note
	if err := json.Unmarshal([]byte(entry), &n); err != nil {
		return Note{}, fmt.Errorf("%w: %s", ErrCorrupted, err)
	}
	// every stored entry must be a complete note
	if n.Id == 0 || n.Text == "" || n.Date == "" {
		return Note{}, fmt.Errorf("%w: incomplete note", ErrCorrupted)
	}
	return n, nil
}
