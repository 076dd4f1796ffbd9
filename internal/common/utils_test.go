package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAny(t *testing.T) {
	assert.True(t, HasAny("private range", "reserved range", "private range"))
	assert.False(t, HasAny("invalid query", "private range"))
	assert.False(t, HasAny("anything"))
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "203.0.113.7", ClientIP("203.0.113.7, 10.0.0.1", "10.0.0.1"))
	assert.Equal(t, "203.0.113.7", ClientIP(" 203.0.113.7 ", "10.0.0.1"))
	assert.Equal(t, "10.0.0.1", ClientIP("", "10.0.0.1"))
	assert.Equal(t, "10.0.0.1", ClientIP(" , 1.2.3.4", "10.0.0.1"))
}
