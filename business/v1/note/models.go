package note

import (
	"encoding/json"
	"errors"
)

// dateLayout is ISO-8601 in UTC with milliseconds, e.g. 2006-01-02T15:04:05.000Z
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	// ErrTextRequired is returned when a note is created without text
	ErrTextRequired = errors.New("note text required")
	// ErrCorrupted is returned when a stored entry is not a note
	ErrCorrupted = errors.New("stored note is corrupted")
)

type Note struct {
	Id   int64  `json:"id" example:"1700000000000"`
	Text string `json:"text" example:"buy milk"`
	Date string `json:"date" example:"2023-11-14T22:13:20.000Z"`
}

type NewNote struct {
	Text string `json:"text" example:"buy milk"`
}

// Event is a note operation received from the message queue; Data depends on Type
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type DeleteNote struct {
	Id int64 `json:"id"`
}
