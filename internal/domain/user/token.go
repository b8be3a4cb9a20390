package user

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// Issuer produces opaque bearer tokens. Tokens must be unguessable and must
// never be derived from ids or any other public data.
type Issuer interface {
	Issue() (string, error)
}

type RandomIssuer struct{}

func NewRandomIssuer() *RandomIssuer {
	return &RandomIssuer{}
}

func (i *RandomIssuer) Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
