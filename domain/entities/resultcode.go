// Package entities provides the core domain types for the module.
// ResultCode, ItemType and MessageStyle are closed enumerations whose numeric
// values are part of the host framework's contract and must never change.
package entities

import "fmt"

// ResultCode is the closed vocabulary of outcomes shared with the host
// framework. Every hook invocation returns exactly one code, and every
// fallible operation inside the module collapses to one at its boundary.
type ResultCode int

const (
	Success ResultCode = iota
	OpenErr
	SymbolErr
	ServiceErr
	SystemErr
	BufErr
	PermDenied
	AuthErr
	CredInsufficient
	AuthInfoUnavail
	UserUnknown
	MaxTries
	NewAuthTokReqd
	AcctExpired
	SessionErr
	CredUnavail
	CredExpired
	CredErr
	NoModuleData
	ConvErr
	AuthTokErr
	AuthTokRecoveryErr
	AuthTokLockBusy
	AuthTokDisableAging
	TryAgain
	Ignore
	Abort
	AuthTokExpired
	ModuleUnknown
	BadItem
	ConvAgain
	Incomplete
)

var resultCodeNames = [...]string{
	Success:             "success",
	OpenErr:             "open_err",
	SymbolErr:           "symbol_err",
	ServiceErr:          "service_err",
	SystemErr:           "system_err",
	BufErr:              "buf_err",
	PermDenied:          "perm_denied",
	AuthErr:             "auth_err",
	CredInsufficient:    "cred_insufficient",
	AuthInfoUnavail:     "authinfo_unavail",
	UserUnknown:         "user_unknown",
	MaxTries:            "maxtries",
	NewAuthTokReqd:      "new_authtok_reqd",
	AcctExpired:         "acct_expired",
	SessionErr:          "session_err",
	CredUnavail:         "cred_unavail",
	CredExpired:         "cred_expired",
	CredErr:             "cred_err",
	NoModuleData:        "no_module_data",
	ConvErr:             "conv_err",
	AuthTokErr:          "authtok_err",
	AuthTokRecoveryErr:  "authtok_recovery_err",
	AuthTokLockBusy:     "authtok_lock_busy",
	AuthTokDisableAging: "authtok_disable_aging",
	TryAgain:            "try_again",
	Ignore:              "ignore",
	Abort:               "abort",
	AuthTokExpired:      "authtok_expired",
	ModuleUnknown:       "module_unknown",
	BadItem:             "bad_item",
	ConvAgain:           "conv_again",
	Incomplete:          "incomplete",
}

// String returns the conventional name of the code for diagnostics.
func (c ResultCode) String() string {
	if c >= 0 && int(c) < len(resultCodeNames) {
		return resultCodeNames[c]
	}
	return fmt.Sprintf("result_code(%d)", int(c))
}

// IsSuccess reports whether the code indicates success.
func (c ResultCode) IsSuccess() bool {
	return c == Success
}
