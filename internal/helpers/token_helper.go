package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateCheckInCode mints the QR payload stored on a registration. It has
// to be unguessable: the hex string acts as a bearer token at event-day
// check-in.
func GenerateCheckInCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
