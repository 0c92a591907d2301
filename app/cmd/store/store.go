package store

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/note-list-api/business/v1/note"
	persistence "github.com/ribgsilva/note-list-api/persistence/v1/note"
	"github.com/ribgsilva/note-list-api/platform/kv"
	"github.com/ribgsilva/note-list-api/sys"
	"go.uber.org/zap"
	"io"
)

func ListCommands() {
	println("Store Commands")
	println("\tcount\t\t\t- Prints how many notes are stored")
	println("\tdump\t\t\t- Prints every note, newest first")
	println("\tclear\t\t\t- Deletes every note")
	println("\thelp\t\t\t- Print the commands available")
}

// Run executes the store command in options against the configured redis and returns the exit code
func Run(out io.Writer, options []string) int {
	if len(options) == 0 {
		ListCommands()
		return 0
	}
	// empty logger
	log := zap.NewNop().Sugar()
	cfg := sys.Load(log)

	rdb, err := kv.Open(kv.Config{
		Addr:        cfg.StoreAddr(),
		User:        cfg.Store.User,
		Pass:        cfg.Store.Pass,
		PingTimeout: cfg.Store.PingTimeout,
	})
	if err != nil {
		println("error:", err.Error())
		return 1
	}
	defer func() {
		_ = rdb.Close()
	}()

	s := persistence.NewStore(rdb, persistence.Config{
		Key:              cfg.Store.Key,
		OperationTimeout: cfg.Store.OperationTimeout,
		MaxRetries:       cfg.Store.MaxRetries,
	})

	if err := Exec(context.Background(), out, note.NewCore(log, s), s, options[0]); err != nil {
		println("error:", err.Error())
		return 1
	}
	return 0
}

// Exec runs a single store command
func Exec(ctx context.Context, out io.Writer, core *note.Core, s *persistence.Store, command string) error {
	switch command {
	case "count":
		n, err := s.Count(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, n)
		return err
	case "dump":
		notes, err := core.List(ctx)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	case "clear":
		if err := s.Clear(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "cleared")
		return err
	case "help":
		fallthrough
	default:
		ListCommands()
		return nil
	}
}
