package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resumatch/candidate-search/internal/api/middleware"
	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/domain"
)

func checkAccess(t *testing.T, session domain.Session, path string) (int, accessResponse) {
	t.Helper()
	e := newEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/access?path="+path, nil), rec)
	c.Set(middleware.SessionKey, session)

	if err := NewAccessHandler(access.NewGate(access.DefaultRoutes())).Check(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp accessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestAccessHandler_Check(t *testing.T) {
	code, resp := checkAccess(t, domain.Session{}, "/upload-status")
	if code != http.StatusOK || resp.Allow || resp.RedirectTo != access.PathApplicantLogin {
		t.Fatalf("unexpected decision: %d %+v", code, resp)
	}
	if !resp.Protected || resp.RequiredUserType != domain.UserTypeApplicant {
		t.Fatalf("expected requirement in response, got %+v", resp)
	}

	_, resp = checkAccess(t, applicantSession(), "/upload-status")
	if !resp.Allow || resp.RedirectTo != "" {
		t.Fatalf("expected allow, got %+v", resp)
	}
}

func TestAccessHandler_PublicPath(t *testing.T) {
	_, resp := checkAccess(t, domain.Session{}, "/login")
	if !resp.Allow || resp.Protected {
		t.Fatalf("expected public allow, got %+v", resp)
	}
}

func TestAccessHandler_MissingPath(t *testing.T) {
	e := newEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/access", nil), httptest.NewRecorder())

	if err := NewAccessHandler(access.NewGate(access.DefaultRoutes())).Check(c); err == nil {
		t.Fatalf("expected error for missing path")
	}
}
