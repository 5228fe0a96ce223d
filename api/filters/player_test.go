package filters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPuuid(t *testing.T) {
	valid := strings.Repeat("a1B2-", 16)

	assert.True(t, ValidPuuid(valid))
	assert.True(t, ValidPuuid(strings.Repeat("x", 78)))

	assert.False(t, ValidPuuid(""))
	assert.False(t, ValidPuuid("too-short"))
	assert.False(t, ValidPuuid(strings.Repeat("a", 60)+"!"))
}
