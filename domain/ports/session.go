package ports

import "github.com/pamnotify-dev/pamnotify/domain/entities"

// ItemReader exposes the typed attributes of the host session.
// The returned bytes are owned by the implementation and are only valid for
// the duration of the call; callers must copy before retaining.
type ItemReader interface {
	// Item returns the raw value of the given item, or nil plus the host's
	// result code when no value is available.
	Item(item entities.ItemType) ([]byte, entities.ResultCode)
}

// Conversation is the host's synchronous prompt facility. Prompt blocks
// until the host has displayed the text; no response is read back.
type Conversation interface {
	Prompt(style entities.MessageStyle, text string) entities.ResultCode
}

// Session is the opaque per-transaction handle supplied by the host for one
// authentication transaction. The module never owns it and must not retain
// it beyond the call in which it was supplied.
type Session interface {
	ItemReader
	Conversation
}
