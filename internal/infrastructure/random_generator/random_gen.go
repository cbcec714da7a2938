package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
)

// RandomGenerator produces the throwaway secrets hashed into the password of
// accounts created through Google sign-in.
type RandomGenerator struct{}

var _ contract.IRandomGenerator = (*RandomGenerator)(nil)

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

// GenerateRandomToken reads n bytes from crypto/rand and returns them
// base64url encoded without padding.
func (rg *RandomGenerator) GenerateRandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read %d random bytes: %w", n, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
