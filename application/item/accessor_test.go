package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamnotify-dev/pamnotify/domain/entities"
	"github.com/pamnotify-dev/pamnotify/domain/errors"
	"github.com/pamnotify-dev/pamnotify/internal/testutil"
)

func TestGet_DecodesValue(t *testing.T) {
	sess := &testutil.FakeSession{
		Items: map[entities.ItemType][]byte{
			entities.ItemUser: []byte("alice"),
		},
	}

	got, err := Get(sess, entities.ItemUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestGet_DecodingIsTotal(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{name: "plain ascii", raw: []byte("host-1"), want: "host-1"},
		{name: "trailing NUL stripped", raw: []byte("alice\x00"), want: "alice"},
		{name: "truncated at first NUL", raw: []byte("al\x00ice"), want: "al"},
		{name: "invalid utf8 replaced", raw: []byte{'a', 0xff, 'b'}, want: "a�b"},
		{name: "lone continuation bytes replaced", raw: []byte{0x80, 0x80}, want: "��"},
		{name: "valid multibyte preserved", raw: []byte("héloïse"), want: "héloïse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &testutil.FakeSession{
				Items: map[entities.ItemType][]byte{entities.ItemUser: tt.raw},
			}
			got, err := Get(sess, entities.ItemUser)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_AbsentWithHostCode(t *testing.T) {
	sess := &testutil.FakeSession{
		ItemCode: map[entities.ItemType]entities.ResultCode{
			entities.ItemUser: entities.BadItem,
		},
	}

	_, err := Get(sess, entities.ItemUser)
	require.Error(t, err)
	assert.Equal(t, entities.BadItem, errors.CodeOf(err))
}

func TestGet_AbsentWithSuccessCode(t *testing.T) {
	// The host reporting success with no value is still an absence; it maps
	// to the generic no-data code.
	sess := &testutil.FakeSession{}

	_, err := Get(sess, entities.ItemUser)
	require.Error(t, err)
	assert.Equal(t, entities.NoModuleData, errors.CodeOf(err))
}

func TestUser(t *testing.T) {
	sess := &testutil.FakeSession{
		Items: map[entities.ItemType][]byte{entities.ItemUser: []byte("bob")},
	}

	user, err := User(sess)
	require.NoError(t, err)
	assert.Equal(t, "bob", user)
}

func TestRemoteHost_Normalization(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{name: "non-empty passes through", raw: []byte("203.0.113.9"), want: "203.0.113.9"},
		{name: "empty becomes placeholder", raw: []byte{}, want: entities.UnknownHost},
		{name: "bare NUL becomes placeholder", raw: []byte{0}, want: entities.UnknownHost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &testutil.FakeSession{
				Items: map[entities.ItemType][]byte{entities.ItemRemoteHost: tt.raw},
			}
			host, err := RemoteHost(sess)
			require.NoError(t, err)
			assert.Equal(t, tt.want, host)
		})
	}
}

func TestRemoteHost_AbsentPropagates(t *testing.T) {
	sess := &testutil.FakeSession{
		ItemCode: map[entities.ItemType]entities.ResultCode{
			entities.ItemRemoteHost: entities.SystemErr,
		},
	}

	_, err := RemoteHost(sess)
	require.Error(t, err)
	assert.Equal(t, entities.SystemErr, errors.CodeOf(err))
}
