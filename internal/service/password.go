package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher envuelve bcrypt: hash salado unidireccional y verificación.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Verify devuelve false tanto para contraseña incorrecta como para digest
// corrupto; ningún caso escapa como error al llamador.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
