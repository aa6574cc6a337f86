package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

func TestSearchHandler_Search(t *testing.T) {
	e := newEcho()
	reason := "Matched skills: Python. "
	stub := &stubCandidateService{
		searchFn: func(ctx context.Context, query string) ([]domain.SearchResult, error) {
			if query != "python developer" {
				t.Fatalf("unexpected query %q", query)
			}
			return []domain.SearchResult{{Resume: &domain.CandidateRecord{ID: "1"}, MatchScore: 8, MatchReason: &reason}}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/search", `{"query":"python developer"}`), rec)

	if err := NewSearchHandler(stub).Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["matchScore"] != float64(8) || resp[0]["matchReason"] != reason {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSearchHandler_EmptyResultIsArray(t *testing.T) {
	e := newEcho()
	stub := &stubCandidateService{
		searchFn: func(ctx context.Context, query string) ([]domain.SearchResult, error) {
			return []domain.SearchResult{}, nil
		},
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/search", `{"query":"cobol"}`), rec)

	if err := NewSearchHandler(stub).Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("expected 200 with [], got %d %q", rec.Code, rec.Body.String())
	}
}

func TestSearchHandler_BlankQuery(t *testing.T) {
	e := newEcho()
	stub := &stubCandidateService{
		searchFn: func(ctx context.Context, query string) ([]domain.SearchResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c := e.NewContext(jsonRequest(http.MethodPost, "/search", `{"query":"   "}`), httptest.NewRecorder())

	if err := NewSearchHandler(stub).Search(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSearchHandler_RemoteFailure(t *testing.T) {
	e := newEcho()
	stub := &stubCandidateService{
		searchFn: func(ctx context.Context, query string) ([]domain.SearchResult, error) {
			return nil, domain.ErrNetwork
		},
	}

	c := e.NewContext(jsonRequest(http.MethodPost, "/search", `{"query":"go"}`), httptest.NewRecorder())

	if err := NewSearchHandler(stub).Search(c); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}
