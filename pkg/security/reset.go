package security

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const resetTokenSize = 32

// NewResetToken produces a single-use password reset token (32 bytes of
// entropy, hex encoded) and its absolute expiry. The token itself carries
// no state, the store keeps it next to the user until it is consumed.
func NewResetToken(ttl time.Duration) (token string, expiresAt time.Time, err error) {
	b := make([]byte, resetTokenSize)

	_, err = rand.Read(b)
	if err != nil {
		return "", time.Time{}, err
	}

	return hex.EncodeToString(b), time.Now().Add(ttl), nil
}
