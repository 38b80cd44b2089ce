package entities

import "fmt"

// UnknownHost is substituted for a remote host the session reports as
// present but empty, so a notification line never carries a blank field.
const UnknownHost = "<unknown>"

// LoginEvent describes one observed login: who authenticated and where
// they came from. RemoteHost is expected to be already normalized.
type LoginEvent struct {
	User       string
	RemoteHost string
}

// Message renders the single-line notification text for the event.
func (e LoginEvent) Message() string {
	return fmt.Sprintf("%s logging in from %s", e.User, e.RemoteHost)
}
