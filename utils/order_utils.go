package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOrderNumber returns a random six-digit, zero-padded order
// number. Uniqueness is enforced by the database; callers retry on a
// collision.
func GenerateOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
