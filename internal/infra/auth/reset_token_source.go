package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"

	"fintrack/internal/domain/service"
)

// resetTokenBytes is the raw entropy of a reset token before hex encoding.
const resetTokenBytes = 32

// randomTokenSource mints reset tokens from crypto/rand.
type randomTokenSource struct{}

// NewResetTokenSource is the constructor for randomTokenSource.
func NewResetTokenSource() service.ResetTokenSource {
	return &randomTokenSource{}
}

// NewToken returns a 64-character hex token backed by 32 random bytes.
func (s *randomTokenSource) NewToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
