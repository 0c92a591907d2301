package notes

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/note-list-api/business/v1/note"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Consume applies the note events received from sub until ctx is cancelled, running at most
// maxWorkers of them at the same time
func Consume(ctx context.Context, log *zap.SugaredLogger, core *note.Core, sub *pubsub.Subscription, maxWorkers int) error {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			log.Infof("message received: %s", string(m.Body))
			handle(ctx, log, core, m.Body)
		}(message)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if ctx.Err() != nil {
		return nil
	}

	return err
}

func handle(ctx context.Context, log *zap.SugaredLogger, core *note.Core, body []byte) {
	var e note.Event
	if err := json.Unmarshal(body, &e); err != nil {
		log.Error("failed to parse body: ", err)
		return
	}

	switch e.Type {
	case "create":
		var c note.NewNote
		if err := json.Unmarshal(e.Data, &c); err != nil {
			log.Errorf("failed to parse create event %s: err: %s", e.Data, err)
			return
		}
		n, err := core.Create(ctx, c)
		if err != nil {
			log.Errorf("failed to create event %s: err: %s", e.Data, err)
			return
		}
		log.Infow("note created", "id", n.Id)
	case "delete":
		var d note.DeleteNote
		if err := json.Unmarshal(e.Data, &d); err != nil {
			log.Errorf("failed to parse delete event %s: err: %s", e.Data, err)
			return
		}
		if err := core.Delete(ctx, d.Id); err != nil {
			log.Errorf("failed to delete event %s: err: %s", e.Data, err)
			return
		}
		log.Infow("note deleted", "id", d.Id)
	default:
		log.Error("unknown event type: ", e.Type)
	}
}
