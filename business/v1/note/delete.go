package note

import (
	"context"
)

// Delete removes every note with the given id. Deleting an id that does not exist
// is not an error.
func (c *Core) Delete(ctx context.Context, id int64) error {
	removed := 0
	err := c.store.Rewrite(ctx, func(entries []string) ([]string, error) {
		removed = 0
		kept := make([]string, 0, len(entries))
		for _, e := range entries {
			n, err := decode(e)
			if err != nil {
				return nil, err
			}
			if n.Id == id {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	c.log.Debugw("note deleted", "id", id, "removed", removed)
	return nil
}
