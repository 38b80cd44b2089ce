package entities

import "fmt"

// ItemType identifies an attribute retrievable from the host session.
// Numeric values are fixed by the host contract.
type ItemType int

const (
	ItemService ItemType = iota + 1
	ItemUser
	ItemTTY
	ItemRemoteHost
	ItemConv
	ItemAuthTok
	ItemOldAuthTok
	ItemRemoteUser
	ItemUserPrompt
	ItemFailDelay
	ItemXDisplay
	ItemXAuthData
	ItemAuthTokType
)

var itemTypeNames = [...]string{
	ItemService:     "service",
	ItemUser:        "user",
	ItemTTY:         "tty",
	ItemRemoteHost:  "rhost",
	ItemConv:        "conv",
	ItemAuthTok:     "authtok",
	ItemOldAuthTok:  "oldauthtok",
	ItemRemoteUser:  "ruser",
	ItemUserPrompt:  "user_prompt",
	ItemFailDelay:   "fail_delay",
	ItemXDisplay:    "xdisplay",
	ItemXAuthData:   "xauthdata",
	ItemAuthTokType: "authtok_type",
}

// String returns the conventional name of the item for diagnostics.
func (i ItemType) String() string {
	if i > 0 && int(i) < len(itemTypeNames) {
		return itemTypeNames[i]
	}
	return fmt.Sprintf("item_type(%d)", int(i))
}

// MessageStyle selects how the host renders a conversation message.
// Numeric values are fixed by the host contract.
type MessageStyle int

const (
	PromptEchoOff MessageStyle = iota + 1
	PromptEchoOn
	ErrorMsg
	TextInfo
)

// Flags is the bitmask the host passes to every hook invocation.
type Flags uint

// Silent asks the module not to emit informational output.
const Silent Flags = 0x8000
