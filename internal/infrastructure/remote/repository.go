package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

// CandidateRepository stores candidates on the backend.
type CandidateRepository struct {
	client *Client
}

func NewCandidateRepository(client *Client) *CandidateRepository {
	return &CandidateRepository{client: client}
}

func (r *CandidateRepository) List(ctx context.Context) ([]*domain.CandidateRecord, error) {
	var out []*domain.CandidateRecord
	if err := r.client.do(ctx, http.MethodGet, "/upload/all", "", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []*domain.CandidateRecord{}
	}
	return out, nil
}

// Add uploads the record's metadata. The backend assigns its own id and
// metadata; the returned record is the backend's.
func (r *CandidateRepository) Add(ctx context.Context, c *domain.CandidateRecord) (*domain.CandidateRecord, error) {
	return r.Upload(ctx, ports.UploadInput{
		Filename: c.OriginalName,
		Category: c.Category,
		Summary:  c.Summary,
	})
}

// Upload posts the file as multipart form data.
func (r *CandidateRepository) Upload(ctx context.Context, in ports.UploadInput) (*domain.CandidateRecord, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", in.Filename)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if in.Content != nil {
		if _, err := io.Copy(part, in.Content); err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
	}
	if in.Category != "" {
		_ = w.WriteField("category", in.Category)
	}
	if in.Summary != "" {
		_ = w.WriteField("summary", in.Summary)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	var created domain.CandidateRecord
	if err := r.client.do(ctx, http.MethodPost, "/upload", w.FormDataContentType(), &body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	err := r.client.do(ctx, http.MethodDelete, "/upload/"+url.PathEscape(id), "", nil, nil)
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrCandidateNotFound, id)
	}
	return err
}
