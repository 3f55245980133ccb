package auth

import (
	"crypto/subtle"
	"strconv"
	"unicode/utf16"
)

// HashPassword computes the 32-bit string checksum the admin gate compares
// against, rendered as signed hexadecimal. It is not a cryptographic hash and
// only keeps casual users out of the settings screens.
func HashPassword(password string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(password)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return strconv.FormatInt(int64(hash), 16)
}

// VerifyPassword reports whether password hashes to expectedHash
func VerifyPassword(password, expectedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(expectedHash)) == 1
}
