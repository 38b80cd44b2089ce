package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepted(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{101, false},
		{301, false},
		{404, false},
		{500, false},
		{0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Accepted(tt.status), "status %d", tt.status)
	}
}
