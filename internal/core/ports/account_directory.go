package ports

import (
	"context"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// AccountDirectory resolves login names to accounts.
type AccountDirectory interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}
