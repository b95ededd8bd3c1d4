package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateOrderNumber()
		require.Len(t, number, 6)
		for _, r := range number {
			assert.True(t, r >= '0' && r <= '9', "order number must be digits only: %s", number)
		}
		seen[number] = true
	}
	// 100 draws from a million values colliding every time would mean
	// the generator is broken.
	assert.Greater(t, len(seen), 1)
}
