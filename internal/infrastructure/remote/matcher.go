package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// Matcher delegates ranking to POST /search. The backend searches its own
// collection, so the candidates argument is ignored.
type Matcher struct {
	client *Client
}

func NewMatcher(client *Client) *Matcher {
	return &Matcher{client: client}
}

type searchRequest struct {
	Query string `json:"query"`
}

func (m *Matcher) Search(ctx context.Context, query string, _ []*domain.CandidateRecord) ([]domain.SearchResult, error) {
	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	var results []domain.SearchResult
	if err := m.client.do(ctx, http.MethodPost, "/search", "application/json", bytes.NewReader(payload), &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}

func (m *Matcher) OwnsCandidates() bool { return true }
