package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

// GetRandomInt generates a secure random number with the given digit
// count (used for short confirmation codes).
func GetRandomInt(length int) int {
	// length=6 gives the range 100000-999999
	min := int64(1)
	for i := 1; i < length; i++ {
		min *= 10
	}
	max := min * 10

	rangeSize := big.NewInt(max - min)
	n, err := rand.Int(rand.Reader, rangeSize)
	if err != nil {
		return int(min) // fallback
	}
	return int(n.Int64() + min)
}

// GetNowAndLenRandomString generates a timestamp-prefixed random string
// used for entity ids, e.g. "241230AbCdE1234567". Entity ids carry a
// single-letter prefix added by the caller: U=user, P=property,
// N=unit, V=visit request, R=reservation request, G=agent application.
func GetNowAndLenRandomString(length int) string {
	result := make([]byte, length)
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[n.Int64()]
	}
	return time.Now().Format("060102") + string(result)
}
