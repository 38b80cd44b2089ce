package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pamnotify-dev/pamnotify/domain/entities"
)

func TestCodeOf_Nil(t *testing.T) {
	assert.Equal(t, entities.Success, CodeOf(nil))
}

func TestCodeOf_CodedErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want entities.ResultCode
	}{
		{
			name: "item error surfaces the host code",
			err:  &ItemError{Item: entities.ItemUser, Host: entities.ConvErr},
			want: entities.ConvErr,
		},
		{
			name: "conversation error surfaces the host code",
			err:  &ConversationError{Host: entities.BufErr},
			want: entities.BufErr,
		},
		{
			name: "relay transport error collapses to ignore",
			err:  &RelayError{Err: stdErrors.New("refused"), Result: entities.Ignore},
			want: entities.Ignore,
		},
		{
			name: "wrapped coded error is still found",
			err:  fmt.Errorf("open session: %w", &ItemError{Item: entities.ItemRemoteHost, Host: entities.BadItem}),
			want: entities.BadItem,
		},
		{
			name: "unknown error collapses to system error",
			err:  stdErrors.New("boom"),
			want: entities.SystemErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestItemError_Message(t *testing.T) {
	err := &ItemError{Item: entities.ItemUser, Host: entities.NoModuleData}
	assert.Equal(t, "no value for session item user: no_module_data", err.Error())
}

func TestRelayError_Message(t *testing.T) {
	withStatus := &RelayError{StatusCode: 503, Result: entities.Ignore}
	assert.Equal(t, "notification rejected with status 503", withStatus.Error())

	cause := stdErrors.New("connection refused")
	withCause := &RelayError{Err: cause, Result: entities.Ignore}
	assert.Contains(t, withCause.Error(), "connection refused")
	assert.Equal(t, cause, stdErrors.Unwrap(withCause))
}
