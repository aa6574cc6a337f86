package ports

import (
	"context"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// CandidateRepository owns the candidate collection. List returns a snapshot in
// insertion order; callers must not mutate the returned records.
type CandidateRepository interface {
	List(ctx context.Context) ([]*domain.CandidateRecord, error)
	Add(ctx context.Context, c *domain.CandidateRecord) (*domain.CandidateRecord, error)
	Delete(ctx context.Context, id string) error
}

// CandidateUploader is implemented by repositories that build records
// themselves from the raw upload, such as a remote backend.
type CandidateUploader interface {
	Upload(ctx context.Context, in UploadInput) (*domain.CandidateRecord, error)
}
