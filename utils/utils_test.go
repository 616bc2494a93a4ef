package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeccak256(t *testing.T) {
	hash := Keccak256("0xtx1:3")

	assert.True(t, len(hash) == 66)
	assert.Equal(t, "0x", hash[:2])

	// deterministic, and sensitive to the event index part
	assert.Equal(t, hash, Keccak256("0xtx1:3"))
	assert.NotEqual(t, hash, Keccak256("0xtx1:4"))
}
