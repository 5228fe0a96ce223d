package queuevalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameModeName(t *testing.T) {
	tests := []struct {
		queueId  int
		expected string
	}{
		{420, "Ranked Solo/Duo"},
		{440, "Ranked Flex"},
		{450, "ARAM"},
		{400, "Normal Draft"},
		{430, "Normal Blind"},
		{1700, "Arena"},
		{900, "Custom Game"},
		{0, "Custom Game"},
		{-1, "Custom Game"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GameModeName(tt.queueId))
	}
}
