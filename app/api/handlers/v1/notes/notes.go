package notes

import (
	"github.com/ribgsilva/note-list-api/business/v1/note"
	"go.uber.org/zap"
)

// Handlers serves the note endpoints
type Handlers struct {
	Log   *zap.SugaredLogger
	Notes *note.Core
}
