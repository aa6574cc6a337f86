package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// DemoAccount is a directory entry with its plain credential. The credential
// is hashed when the directory is built and never kept.
type DemoAccount struct {
	ID       string
	Username string
	Password string
	Role     string
}

// DemoAccounts is the static directory the web client ships with.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{ID: "1", Username: "recruiter", Password: "password123", Role: domain.RoleRecruiter},
		{ID: "2", Username: "admin", Password: "admin123", Role: domain.RoleAdmin},
		{ID: "3", Username: "user", Password: "password123", Role: domain.RoleApplicant},
	}
}

// AccountDirectory is a read-only ports.AccountDirectory.
type AccountDirectory struct {
	accounts map[string]domain.Account
}

// NewAccountDirectory hashes every credential with bcrypt at the given cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewAccountDirectory(entries []DemoAccount, cost int) (*AccountDirectory, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	accounts := make(map[string]domain.Account, len(entries))
	for _, e := range entries {
		if _, dup := accounts[e.Username]; dup {
			return nil, fmt.Errorf("duplicate username %q", e.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(e.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %q: %w", e.Username, err)
		}
		accounts[e.Username] = domain.Account{
			ID:             e.ID,
			Username:       e.Username,
			Role:           e.Role,
			CredentialHash: string(hash),
		}
	}
	return &AccountDirectory{accounts: accounts}, nil
}

func (d *AccountDirectory) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	acc, ok := d.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &acc, nil
}
