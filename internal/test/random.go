package test

import (
	"math/rand/v2"
	"strings"
)

// RandomDigits returns a pseudo-random numeric string whose length lies in
// [minLen, maxLen]. Provider ids and phone numbers are digit strings.
func RandomDigits(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)
	length := minLen + rand.IntN(maxLen-minLen+1)

	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
