package note

import (
	"context"
)

// List returns every note, the most recently created first
func (c *Core) List(ctx context.Context) ([]Note, error) {
	entries, err := c.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, len(entries))
	for i, e := range entries {
		n, err := decode(e)
		if err != nil {
			return nil, err
		}
		notes[len(entries)-1-i] = n
	}
	return notes, nil
}
