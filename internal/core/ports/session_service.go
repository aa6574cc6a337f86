package ports

import (
	"context"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token   string
	Session domain.Session
	// Landing is the path the client should navigate to next.
	Landing string
}

type SessionService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	Load(ctx context.Context, sessionID string) (domain.Session, error)
}
