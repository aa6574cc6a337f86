package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/resumatch/candidate-search/internal/core/matching"
	"github.com/resumatch/candidate-search/internal/core/service"
	"github.com/resumatch/candidate-search/internal/infrastructure/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := zerolog.Nop()

	accounts, err := memory.NewAccountDirectory(memory.DemoAccounts(), 4)
	if err != nil {
		t.Fatalf("accounts: %v", err)
	}
	sessions := service.NewSessionService(accounts, memory.NewSessionKV(), "secret", time.Hour, log)
	candidates := service.NewCandidateService(
		memory.NewCandidateRepository(memory.MockCandidates()...),
		matching.NewLocalKeywordMatcher(), 0, log,
	)

	e := NewRouter(Dependencies{
		Sessions:   sessions,
		Candidates: candidates,
		JWTSecret:  "secret",
		Log:        log,
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func login(t *testing.T, srv *httptest.Server, user, pass string) string {
	t.Helper()
	resp, body := do(t, srv, http.MethodPost, "/auth/login", "", `{"username":"`+user+`","password":"`+pass+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d: %s", user, resp.StatusCode, body)
	}
	var out struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &out)
	return out.Token
}

func TestRouter_RecruiterSearchFlow(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodPost, "/search", "", `{"query":"python"}`)
	if resp.StatusCode != http.StatusUnauthorized || !strings.Contains(string(body), `"redirect_to":"/recruiter-login"`) {
		t.Fatalf("expected 401 with recruiter login redirect, got %d %s", resp.StatusCode, body)
	}

	token := login(t, srv, "recruiter", "password123")

	resp, body = do(t, srv, http.MethodPost, "/search", token, `{"query":"python developer"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", resp.StatusCode, body)
	}
	var results []map[string]any
	if err := json.Unmarshal(body, &results); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(results) == 0 || len(results) > 5 {
		t.Fatalf("expected between 1 and 5 results, got %d", len(results))
	}

	resp, _ = do(t, srv, http.MethodPost, "/auth/logout", token, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 on logout, got %d", resp.StatusCode)
	}
	resp, _ = do(t, srv, http.MethodPost, "/search", token, `{"query":"python"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestRouter_ApplicantCannotSearch(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "user", "password123")

	resp, body := do(t, srv, http.MethodPost, "/search", token, `{"query":"python"}`)
	if resp.StatusCode != http.StatusForbidden || !strings.Contains(string(body), `"redirect_to":"/upload-status"`) {
		t.Fatalf("expected 403 with upload-status redirect, got %d %s", resp.StatusCode, body)
	}
}

func TestRouter_AdminOnlyDelete(t *testing.T) {
	srv := newTestServer(t)

	recruiter := login(t, srv, "recruiter", "password123")
	resp, _ := do(t, srv, http.MethodDelete, "/upload/unknown", recruiter, "")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for recruiter, got %d", resp.StatusCode)
	}

	admin := login(t, srv, "admin", "admin123")
	resp, _ = do(t, srv, http.MethodDelete, "/upload/unknown", admin, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for admin, got %d", resp.StatusCode)
	}
}

func TestRouter_BadLogin(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodPost, "/auth/login", "", `{"username":"admin","password":"nope"}`)
	if resp.StatusCode != http.StatusUnauthorized || !strings.Contains(string(body), "invalid credentials") {
		t.Fatalf("expected 401, got %d %s", resp.StatusCode, body)
	}
}

func TestRouter_AccessAndHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, srv, http.MethodGet, "/v1/access?path=/admin/candidates", "", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `"redirect_to":"/login"`) {
		t.Fatalf("unexpected access response: %d %s", resp.StatusCode, body)
	}

	resp, _ = do(t, srv, http.MethodGet, "/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected healthy, got %d", resp.StatusCode)
	}
	resp, _ = do(t, srv, http.MethodGet, "/health/ready", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected ready without backends, got %d", resp.StatusCode)
	}

	resp, body = do(t, srv, http.MethodGet, "/metrics", "", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "resumatch_access_decisions_total") {
		t.Fatalf("expected custom metrics exposed, got %d", resp.StatusCode)
	}
}
