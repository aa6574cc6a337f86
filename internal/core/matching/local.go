package matching

import (
	"context"
	"sort"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// MaxResults caps the number of results a search returns.
const MaxResults = 5

// Matcher ranks candidates against a query. LocalKeywordMatcher scores in
// process; a remote implementation delegates to the search endpoint.
type Matcher interface {
	Search(ctx context.Context, query string, candidates []*domain.CandidateRecord) ([]domain.SearchResult, error)
}

// SelfSourcing is implemented by matchers that search a collection they own
// and ignore the candidates passed to Search.
type SelfSourcing interface {
	OwnsCandidates() bool
}

// LocalKeywordMatcher implements Matcher with weighted keyword overlap.
type LocalKeywordMatcher struct{}

func NewLocalKeywordMatcher() *LocalKeywordMatcher {
	return &LocalKeywordMatcher{}
}

// Search never returns an error; the signature satisfies Matcher.
func (m *LocalKeywordMatcher) Search(_ context.Context, query string, candidates []*domain.CandidateRecord) ([]domain.SearchResult, error) {
	return Rank(query, candidates), nil
}

// Rank scores every candidate, drops non-matches, sorts by score descending
// (ties keep input order) and returns at most MaxResults results.
func Rank(query string, candidates []*domain.CandidateRecord) []domain.SearchResult {
	results := []domain.SearchResult{}
	tokens := Tokenize(query)
	if len(tokens) == 0 || len(candidates) == 0 {
		return results
	}

	for _, c := range candidates {
		if c == nil {
			continue
		}
		s := ScoreCandidate(tokens, c)
		total := s.Total()
		if total == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			Resume:      c,
			MatchScore:  total,
			MatchReason: Reason(tokens, c, s),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
