package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/verdepos/verdepos/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	accounts []Account
}

// NewService constructs a Service over a fixed account list.
func NewService(accounts []Account) *Service {
	return &Service{accounts: accounts}
}

// DefaultAccounts returns the built-in single-store account list. Passwords
// are hashed at startup so plaintext never leaves this function.
func DefaultAccounts() []Account {
	seed := []struct {
		username string
		password string
		role     Role
	}{
		{"admin", "123", RoleAdmin},
		{"vendedor", "456", RoleSeller},
		{"domiciliario", "456", RoleCourier},
	}
	accounts := make([]Account, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
		if err != nil {
			continue
		}
		accounts = append(accounts, Account{Username: s.username, PasswordHash: hash, Role: s.role})
	}
	return accounts
}

// Authenticate validates username/password credentials.
func (s *Service) Authenticate(username, password string) (Account, error) {
	for _, account := range s.accounts {
		if account.Username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
			return Account{}, shared.ErrInvalidCredentials
		}
		return account, nil
	}
	return Account{}, shared.ErrInvalidCredentials
}
