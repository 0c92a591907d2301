package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// Create stores a new note. Its id is the creation time in unix milliseconds, so two
// notes created within the same millisecond share an id.
func (c *Core) Create(ctx context.Context, newN NewNote) (Note, error) {
	if newN.Text == "" {
		return Note{}, ErrTextRequired
	}

	t := c.now().UTC()
	n := Note{
		Id:   t.UnixMilli(),
		Text: newN.Text,
		Date: t.Format(dateLayout),
	}

	data, err := json.Marshal(n)
	if err != nil {
		return Note{}, fmt.Errorf("failed to encode note: %w", err)
	}

	if err := c.store.Append(ctx, string(data)); err != nil {
		return Note{}, err
	}

	c.log.Debugw("note created", "id", n.Id)
	return n, nil
}
