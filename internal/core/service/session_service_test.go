package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/domain"
)

var discardLogger = zerolog.Nop()

type stubDirectory struct {
	accounts map[string]*domain.Account
	err      error
}

func newStubDirectory(t *testing.T) *stubDirectory {
	t.Helper()
	d := &stubDirectory{accounts: make(map[string]*domain.Account)}
	d.add(t, "1", "recruiter", "password123", domain.RoleRecruiter)
	d.add(t, "2", "admin", "admin123", domain.RoleAdmin)
	d.add(t, "3", "user", "password123", domain.RoleApplicant)
	return d
}

func (d *stubDirectory) add(t *testing.T, id, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	d.accounts[username] = &domain.Account{ID: id, Username: username, Role: role, CredentialHash: string(hash)}
}

func (d *stubDirectory) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	if d.err != nil {
		return nil, d.err
	}
	acc, ok := d.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *acc
	return &clone, nil
}

type stubKV struct {
	data   map[string]string
	setErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (kv *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *stubKV) Set(_ context.Context, key, value string) error {
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.data[key] = value
	return nil
}

func (kv *stubKV) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(kv.data, k)
	}
	return nil
}

func TestSessionService_Login_Success(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(newStubDirectory(t), kv, "secret", time.Hour, discardLogger)

	res, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Session.ID == "" || res.Session.Account == nil {
		t.Fatalf("expected populated session, got %+v", res.Session)
	}
	if res.Session.UserType != domain.UserTypeRecruiter {
		t.Fatalf("expected recruiter user type, got %q", res.Session.UserType)
	}
	if res.Landing != access.PathSearch {
		t.Fatalf("expected landing %s, got %s", access.PathSearch, res.Landing)
	}

	if kv.data[userTypeKey(res.Session.ID)] != "recruiter" {
		t.Fatalf("user type not persisted: %+v", kv.data)
	}
	if raw := kv.data[userKey(res.Session.ID)]; raw == "" {
		t.Fatalf("account not persisted")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sid"] != res.Session.ID || claims["role"] != domain.RoleAdmin || claims["user_type"] != "recruiter" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionService_Login_DoesNotPersistCredential(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(newStubDirectory(t), kv, "secret", time.Hour, discardLogger)

	res, err := svc.Login(context.Background(), "user", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	for _, v := range kv.data {
		if strings.Contains(v, "$2a$") {
			t.Fatalf("credential hash leaked into session store: %s", v)
		}
	}
	if res.Session.UserType != domain.UserTypeApplicant || res.Landing != access.PathUploadStatus {
		t.Fatalf("unexpected applicant session: %+v landing=%s", res.Session, res.Landing)
	}
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	svc := NewSessionService(newStubDirectory(t), newStubKV(), "secret", time.Hour, discardLogger)
	ctx := context.Background()

	cases := []struct{ user, pass string }{
		{"admin", "wrong"},
		{"ghost", "admin123"},
		{"", "admin123"},
		{"admin", ""},
	}
	for _, c := range cases {
		if _, err := svc.Login(ctx, c.user, c.pass); err != domain.ErrInvalidCredentials {
			t.Fatalf("login(%q, %q): expected ErrInvalidCredentials, got %v", c.user, c.pass, err)
		}
	}
}

func TestSessionService_Login_StoreFailure(t *testing.T) {
	kv := newStubKV()
	kv.setErr = errors.New("redis down")
	svc := NewSessionService(newStubDirectory(t), kv, "secret", time.Hour, discardLogger)

	if _, err := svc.Login(context.Background(), "admin", "admin123"); err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(kv.data) != 0 {
		t.Fatalf("expected nothing persisted, got %+v", kv.data)
	}
}

func TestSessionService_LoadAndLogout(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(newStubDirectory(t), kv, "secret", time.Hour, discardLogger)
	ctx := context.Background()

	res, err := svc.Login(ctx, "recruiter", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	loaded, err := svc.Load(ctx, res.Session.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Authenticated() || loaded.Account.Username != "recruiter" || loaded.UserType != domain.UserTypeRecruiter {
		t.Fatalf("unexpected loaded session: %+v", loaded)
	}

	if err := svc.Logout(ctx, res.Session.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(kv.data) != 0 {
		t.Fatalf("expected both keys removed, got %+v", kv.data)
	}

	after, err := svc.Load(ctx, res.Session.ID)
	if err != nil {
		t.Fatalf("load after logout failed: %v", err)
	}
	if after.Authenticated() || after.UserType != domain.UserTypeNone {
		t.Fatalf("expected empty session after logout, got %+v", after)
	}
}

func TestSessionService_Load_RederivesUserType(t *testing.T) {
	kv := newStubKV()
	svc := NewSessionService(newStubDirectory(t), kv, "secret", time.Hour, discardLogger)
	kv.data[userKey("s1")] = `{"id":"2","username":"admin","role":"admin"}`
	kv.data[userTypeKey("s1")] = "applicant"

	s, err := svc.Load(context.Background(), "s1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.UserType != domain.UserTypeRecruiter {
		t.Fatalf("expected derived recruiter type, got %q", s.UserType)
	}
}

func TestSessionService_Load_Empty(t *testing.T) {
	svc := NewSessionService(newStubDirectory(t), newStubKV(), "secret", time.Hour, discardLogger)

	for _, id := range []string{"", "unknown"} {
		s, err := svc.Load(context.Background(), id)
		if err != nil {
			t.Fatalf("load(%q): %v", id, err)
		}
		if s.Authenticated() {
			t.Fatalf("load(%q): expected empty session", id)
		}
	}
}
