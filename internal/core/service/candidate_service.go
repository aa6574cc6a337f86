package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/resumatch/candidate-search/internal/core/domain"
	"github.com/resumatch/candidate-search/internal/core/matching"
	"github.com/resumatch/candidate-search/internal/core/ports"
)

const (
	DefaultMaxUploadBytes = 5 << 20
	pdfContentType        = "application/pdf"
	unknownEducation      = "Unknown"
)

// placeholderSkills feeds the generated summary of an upload that came without
// one. Resume bodies are not parsed.
var placeholderSkills = []string{"JavaScript", "Python", "React", "Node.js", "Data Analysis"}

// CandidateService owns the candidate collection and runs searches over it.
type CandidateService struct {
	repo           ports.CandidateRepository
	matcher        matching.Matcher
	maxUploadBytes int64
	log            zerolog.Logger
	now            func() time.Time
}

func NewCandidateService(repo ports.CandidateRepository, matcher matching.Matcher, maxUploadBytes int64, log zerolog.Logger) *CandidateService {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &CandidateService{
		repo:           repo,
		matcher:        matcher,
		maxUploadBytes: maxUploadBytes,
		log:            log,
		now:            time.Now,
	}
}

// Upload validates the file metadata and appends a record with placeholder
// metadata to the collection.
func (s *CandidateService) Upload(ctx context.Context, in ports.UploadInput) (*domain.CandidateRecord, error) {
	if err := s.validateUpload(in); err != nil {
		return nil, err
	}

	if up, ok := s.repo.(ports.CandidateUploader); ok {
		created, err := up.Upload(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("upload candidate: %w", err)
		}
		s.log.Info().Str("candidate_id", created.ID).Msg("candidate uploaded to backend")
		return created, nil
	}

	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		summary = placeholderSummary(in.Filename)
	}

	record := &domain.CandidateRecord{
		ID:              uuid.NewString(),
		Filename:        normalizeFilename(in.Filename),
		OriginalName:    in.Filename,
		UploadDate:      s.now().UTC(),
		Category:        strings.TrimSpace(in.Category),
		Summary:         summary,
		Skills:          []string{},
		ExperienceYears: 0,
		EducationLevel:  unknownEducation,
	}

	created, err := s.repo.Add(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Str("filename", in.Filename).Msg("failed to store candidate")
		return nil, fmt.Errorf("upload candidate: %w", err)
	}

	s.log.Info().
		Str("candidate_id", created.ID).
		Str("category", created.Category).
		Msg("candidate uploaded")

	return created, nil
}

func (s *CandidateService) validateUpload(in ports.UploadInput) error {
	if in.Filename == "" {
		return fmt.Errorf("%w: no file selected", domain.ErrValidation)
	}
	if !isPDF(in.Filename, in.ContentType) {
		return fmt.Errorf("%w: file must be a PDF", domain.ErrValidation)
	}
	if in.Size > s.maxUploadBytes {
		return fmt.Errorf("%w: file exceeds %d bytes", domain.ErrValidation, s.maxUploadBytes)
	}
	if strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	return nil
}

func (s *CandidateService) List(ctx context.Context) ([]*domain.CandidateRecord, error) {
	candidates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

func (s *CandidateService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	s.log.Info().Str("candidate_id", id).Msg("candidate deleted")
	return nil
}

// Search ranks the collection against query. An empty result is not an error.
func (s *CandidateService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrValidation)
	}

	var candidates []*domain.CandidateRecord
	if owner, ok := s.matcher.(matching.SelfSourcing); !ok || !owner.OwnsCandidates() {
		var err error
		candidates, err = s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("search: list candidates: %w", err)
		}
	}

	results, err := s.matcher.Search(ctx, query, candidates)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	s.log.Debug().
		Str("query", query).
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Msg("search completed")

	return results, nil
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), pdfContentType)
}

// normalizeFilename replaces whitespace runs with "-" and lower-cases the name.
func normalizeFilename(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// placeholderSummary picks three skills deterministically from the file name.
func placeholderSummary(filename string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(filename))
	start := int(h.Sum32() % uint32(len(placeholderSkills)))

	picked := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		picked = append(picked, placeholderSkills[(start+i)%len(placeholderSkills)])
	}
	return fmt.Sprintf("Recent graduate with experience in %s. Passionate about technology and eager to learn new skills.",
		strings.Join(picked, ", "))
}
