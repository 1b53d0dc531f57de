package adminauth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrNotConfigured возвращается, когда PIN не задан
var ErrNotConfigured = errors.New("adminauth: admin pin is not configured")

// Verifier проверяет PIN администратора
type Verifier interface {
	Verify(candidate string) bool
}

// StaticPIN сравнивает с PIN в открытом виде
type StaticPIN struct {
	pin []byte
}

// NewStaticPIN создает проверку по PIN в открытом виде
func NewStaticPIN(pin string) *StaticPIN {
	return &StaticPIN{pin: []byte(pin)}
}

// Verify сравнивает за постоянное время
func (p *StaticPIN) Verify(candidate string) bool {
	if len(p.pin) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(p.pin, []byte(candidate)) == 1
}

// BcryptPIN сравнивает с bcrypt хешем PIN
type BcryptPIN struct {
	hash []byte
}

// NewBcryptPIN создает проверку по bcrypt хешу
func NewBcryptPIN(hash string) (*BcryptPIN, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("adminauth: invalid bcrypt hash: %w", err)
	}
	return &BcryptPIN{hash: []byte(hash)}, nil
}

// Verify проверяет PIN по хешу
func (p *BcryptPIN) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(candidate)) == nil
}

// HashPIN возвращает bcrypt хеш PIN для конфигурации
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("adminauth: hash pin: %w", err)
	}
	return string(hash), nil
}

// New выбирает проверку: хеш имеет приоритет над PIN в открытом виде
func New(pin, pinHash string) (Verifier, error) {
	switch {
	case pinHash != "":
		return NewBcryptPIN(pinHash)
	case pin != "":
		return NewStaticPIN(pin), nil
	default:
		return nil, ErrNotConfigured
	}
}
