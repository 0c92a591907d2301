package note

import (
	"context"
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/note-list-api/persistence/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"sync"
	"testing"
	"time"
)

func newCore(t *testing.T, maxRetries int) (*miniredis.Miniredis, *Core) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := note.NewStore(rdb, note.Config{Key: "notes", OperationTimeout: 5 * time.Second, MaxRetries: maxRetries})
	return s, NewCore(zap.NewNop().Sugar(), store)
}

func fixedClock(ms ...int64) func() time.Time {
	i := 0
	return func() time.Time {
		t := time.UnixMilli(ms[i])
		i++
		return t
	}
}

func TestCreate(t *testing.T) {
	s, core := newCore(t, 1)
	core.now = fixedClock(1700000000123)

	n, err := core.Create(context.Background(), NewNote{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, Note{Id: 1700000000123, Text: "buy milk", Date: "2023-11-14T22:13:20.123Z"}, n)

	list, err := s.List("notes")
	require.NoError(t, err)
	assert.Equal(t, []string{`{"id":1700000000123,"text":"buy milk","date":"2023-11-14T22:13:20.123Z"}`}, list)
}

func TestCreateWithoutText(t *testing.T) {
	s, core := newCore(t, 1)

	_, err := core.Create(context.Background(), NewNote{})
	assert.ErrorIs(t, err, ErrTextRequired)
	assert.False(t, s.Exists("notes"))
}

func TestListNewestFirst(t *testing.T) {
	_, core := newCore(t, 1)
	core.now = fixedClock(1, 2, 3)
	ctx := context.Background()

	for _, text := range []string{"A", "B", "C"} {
		_, err := core.Create(ctx, NewNote{Text: text})
		require.NoError(t, err)
	}

	notes, err := core.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "C", notes[0].Text)
	assert.Equal(t, "B", notes[1].Text)
	assert.Equal(t, "A", notes[2].Text)
}

func TestListEmpty(t *testing.T) {
	_, core := newCore(t, 1)

	notes, err := core.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListCorrupted(t *testing.T) {
	for _, entry := range []string{"not json", `{"foo":"bar"}`, "null", `{"id":2,"text":"","date":"x"}`} {
		t.Run(entry, func(t *testing.T) {
			s, core := newCore(t, 1)
			_, err := s.Push("notes", `{"id":1,"text":"ok","date":"x"}`, entry)
			require.NoError(t, err)

			notes, err := core.List(context.Background())
			assert.ErrorIs(t, err, ErrCorrupted)
			assert.Nil(t, notes)
		})
	}
}

func TestDelete(t *testing.T) {
	s, core := newCore(t, 1)
	_, err := s.Push("notes",
		`{"id":1,"text":"one","date":"d1"}`,
		`{"id":2,"text":"two","date":"d2"}`,
		`{"id":3,"text":"three","date":"d3"}`,
	)
	require.NoError(t, err)

	require.NoError(t, core.Delete(context.Background(), 2))

	list, err := s.List("notes")
	require.NoError(t, err)
	assert.Equal(t, []string{`{"id":1,"text":"one","date":"d1"}`, `{"id":3,"text":"three","date":"d3"}`}, list)
}

func TestDeleteMissing(t *testing.T) {
	s, core := newCore(t, 1)
	_, err := s.Push("notes", `{"id":1,"text":"one","date":"d1"}`)
	require.NoError(t, err)

	require.NoError(t, core.Delete(context.Background(), 42))

	list, err := s.List("notes")
	require.NoError(t, err)
	assert.Equal(t, []string{`{"id":1,"text":"one","date":"d1"}`}, list)
}

func TestDeleteLast(t *testing.T) {
	s, core := newCore(t, 1)
	_, err := s.Push("notes", `{"id":1,"text":"one","date":"d1"}`)
	require.NoError(t, err)

	require.NoError(t, core.Delete(context.Background(), 1))
	assert.False(t, s.Exists("notes"))
}

func TestDeleteCorrupted(t *testing.T) {
	s, core := newCore(t, 1)
	_, err := s.Push("notes", `{"id":1,"text":"one","date":"d1"}`, "{")
	require.NoError(t, err)

	assert.ErrorIs(t, core.Delete(context.Background(), 1), ErrCorrupted)

	list, err := s.List("notes")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateDuringDeleteIsKept(t *testing.T) {
	s, core := newCore(t, 1000)
	ctx := context.Background()
	for id := 1; id <= 5; id++ {
		_, err := s.Push("notes", fmt.Sprintf(`{"id":%d,"text":"seed","date":"d"}`, id))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := core.Create(ctx, NewNote{Text: fmt.Sprintf("new %d", i)})
			assert.NoError(t, err)
		}(i)
	}
	for id := int64(1); id <= 5; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.NoError(t, core.Delete(ctx, id))
		}(id)
	}
	wg.Wait()

	notes, err := core.List(ctx)
	require.NoError(t, err)
	texts := make([]string, 0, len(notes))
	for _, n := range notes {
		texts = append(texts, n.Text)
	}
	assert.Len(t, texts, 10)
	for i := 0; i < 10; i++ {
		assert.Contains(t, texts, fmt.Sprintf("new %d", i))
	}
}
