package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

// SessionService implements login, logout and session restore. Sessions are
// persisted only from Login and Logout.
type SessionService struct {
	accounts  ports.AccountDirectory
	kv        ports.SessionKV
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewSessionService(accounts ports.AccountDirectory, kv ports.SessionKV, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		accounts:  accounts,
		kv:        kv,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Login checks the credential and opens a new session. Unknown users and wrong
// passwords both yield ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	acc, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.CredentialHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := domain.NewSession(uuid.NewString(), acc)
	if err := s.persist(ctx, session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		_ = s.kv.Delete(ctx, userKey(session.ID), userTypeKey(session.ID))
		return nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().
		Str("username", acc.Username).
		Str("role", acc.Role).
		Str("user_type", string(session.UserType)).
		Msg("session opened")

	return &ports.LoginResult{
		Token:   token,
		Session: session,
		Landing: access.LandingPathFor(session.UserType),
	}, nil
}

// Logout removes both keys of the session. Logging out an unknown or empty
// session is a no-op.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.kv.Delete(ctx, userKey(sessionID), userTypeKey(sessionID)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("session closed")
	return nil
}

// Load restores a session from the store. A missing account key means the
// session is logged out and the empty session is returned.
func (s *SessionService) Load(ctx context.Context, sessionID string) (domain.Session, error) {
	if sessionID == "" {
		return domain.Session{}, nil
	}

	raw, found, err := s.kv.Get(ctx, userKey(sessionID))
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return domain.Session{}, nil
	}

	var acc domain.Account
	if err := json.Unmarshal([]byte(raw), &acc); err != nil {
		return domain.Session{}, fmt.Errorf("load session: decode account: %w", err)
	}

	session := domain.NewSession(sessionID, &acc)

	stored, found, err := s.kv.Get(ctx, userTypeKey(sessionID))
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !found || domain.UserType(stored) != session.UserType {
		s.log.Warn().
			Str("session_id", sessionID).
			Str("stored_user_type", stored).
			Str("derived_user_type", string(session.UserType)).
			Msg("stored user type out of sync, using derived value")
	}

	return session, nil
}

func (s *SessionService) persist(ctx context.Context, session domain.Session) error {
	payload, err := json.Marshal(session.Account)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := s.kv.Set(ctx, userKey(session.ID), string(payload)); err != nil {
		return fmt.Errorf("store account: %w", err)
	}
	if err := s.kv.Set(ctx, userTypeKey(session.ID), string(session.UserType)); err != nil {
		_ = s.kv.Delete(ctx, userKey(session.ID))
		return fmt.Errorf("store user type: %w", err)
	}
	return nil
}

func (s *SessionService) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":       session.ID,
		"username":  session.Account.Username,
		"role":      session.Account.Role,
		"user_type": string(session.UserType),
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func userKey(sessionID string) string {
	return "session:" + sessionID + ":user"
}

func userTypeKey(sessionID string) string {
	return "session:" + sessionID + ":userType"
}
