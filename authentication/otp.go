package authentication

import (
	"math/rand"
	"time"
)

// GenerateOTP returns a numeric one-time code of the given length.
func GenerateOTP(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	characters := "0123456789"
	otp := make([]byte, length)
	for i := range otp {
		otp[i] = characters[rng.Intn(len(characters))]
	}
	return string(otp)
}

// ValidateOTP compares the submitted code with the stored one.
func ValidateOTP(otp, expected string) bool {
	return otp != "" && otp == expected
}
