package mongo

import (
	"testing"
	"time"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

func TestCandidateDocumentMapping(t *testing.T) {
	rec := &domain.CandidateRecord{
		ID:              "abc",
		Filename:        "cv.pdf",
		OriginalName:    "CV.pdf",
		UploadDate:      time.Date(2024, 1, 2, 3, 4, 5, 678_000_123, time.UTC),
		Category:        "AI Engineer",
		Summary:         "NLP",
		ExperienceYears: 4,
		EducationLevel:  "PhD",
	}

	doc := fromDomain(rec)
	if doc.Skills == nil {
		t.Fatalf("expected skills stored as empty array")
	}

	back := toDomain(&doc)
	if back.ID != rec.ID || back.Category != rec.Category || back.ExperienceYears != 4 {
		t.Fatalf("unexpected mapping: %+v", back)
	}
	if !back.UploadDate.Equal(rec.UploadDate) {
		t.Fatalf("upload date mismatch: %v vs %v", back.UploadDate, rec.UploadDate)
	}
}

func TestUnixNanoToTime_Zero(t *testing.T) {
	if !unixNanoToTime(0).IsZero() || timeToUnixNano(time.Time{}) != 0 {
		t.Fatalf("zero times must round-trip as zero")
	}
}
