package user

import "golang.org/x/crypto/bcrypt"

// Hasher is the one-way credential verifier. Hash derives an opaque hash
// from a plaintext secret; Verify reports whether the secret matches a
// previously derived hash.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
