package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP returns a zero-padded 6-digit verification code.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
