package note

import (
	"errors"
	"time"
)

// ErrConflict is returned by Rewrite when the list kept changing under it for every attempt
var ErrConflict = errors.New("notes list modified concurrently")

// Config tunes the Store
type Config struct {
	Key              string
	OperationTimeout time.Duration
	MaxRetries       int
}
