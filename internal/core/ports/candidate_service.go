package ports

import (
	"context"
	"io"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// UploadInput is the DTO passed from the transport layer to CandidateService.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader // optional; the body is not parsed
	Category    string
	Summary     string // optional; a placeholder is generated when empty
}

// CandidateService defines use-case operations over the candidate collection.
type CandidateService interface {
	Upload(ctx context.Context, in UploadInput) (*domain.CandidateRecord, error)
	List(ctx context.Context) ([]*domain.CandidateRecord, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}
