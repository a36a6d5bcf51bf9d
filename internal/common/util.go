package common

import (
	"crypto/rand"
)

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system entropy source fails, which is unrecoverable
// for a client that is about to encrypt something with the result.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray zeroes the buffer in place. Safe to call with nil.
// Used for passwords and encryption keys after they are consumed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
