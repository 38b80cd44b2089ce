// Package conv wraps the host's synchronous prompt facility.
package conv

import (
	"strings"

	"github.com/pamnotify-dev/pamnotify/domain/entities"
	"github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/domain/ports"
)

// Info displays an informational message in the interactive session.
// The call blocks until the host has handled the prompt.
func Info(sess ports.Conversation, text string) error {
	return send(sess, entities.TextInfo, text)
}

// Error displays an error message in the interactive session.
func Error(sess ports.Conversation, text string) error {
	return send(sess, entities.ErrorMsg, text)
}

func send(sess ports.Conversation, style entities.MessageStyle, text string) error {
	// The host consumes NUL-terminated strings; text containing a NUL
	// cannot be passed through and is rejected before contacting the host.
	if strings.ContainsRune(text, 0) {
		return &errors.ConversationError{Host: entities.BufErr}
	}
	if code := sess.Prompt(style, text); code != entities.Success {
		return &errors.ConversationError{Host: code}
	}
	return nil
}
