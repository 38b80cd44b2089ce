// Package item retrieves identity attributes from the host session.
package item

import (
	"strings"

	"github.com/pamnotify-dev/pamnotify/domain/entities"
	"github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/domain/ports"
)

// Get retrieves one item from the session and decodes it as text.
// When the host has no value, the host's own result code is surfaced if it
// is non-success; otherwise the generic no-data code is used.
func Get(sess ports.ItemReader, it entities.ItemType) (string, error) {
	raw, code := sess.Item(it)
	if raw == nil {
		if code != entities.Success {
			return "", &errors.ItemError{Item: it, Host: code}
		}
		return "", &errors.ItemError{Item: it, Host: entities.NoModuleData}
	}
	return decode(raw), nil
}

// decode converts host-owned bytes to text. It is total: the value is
// truncated at the first NUL (the host hands over C strings) and invalid
// UTF-8 subsequences are replaced rather than rejected.
func decode(raw []byte) string {
	s := string(raw)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.ToValidUTF8(s, "�")
}

// User returns the name of the user the session is authenticating.
func User(sess ports.ItemReader) (string, error) {
	return Get(sess, entities.ItemUser)
}

// RemoteHost returns the originating host of the session. An empty but
// present value is normalized to the UnknownHost placeholder so it never
// produces a blank field in a notification line.
func RemoteHost(sess ports.ItemReader) (string, error) {
	host, err := Get(sess, entities.ItemRemoteHost)
	if err != nil {
		return "", err
	}
	if host == "" {
		return entities.UnknownHost, nil
	}
	return host, nil
}
