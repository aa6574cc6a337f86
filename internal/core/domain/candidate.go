package domain

import (
	"encoding/json"
	"time"
)

// CandidateRecord is a stored resume's structured metadata. Records are never
// mutated after creation; a changed resume is a new record.
type CandidateRecord struct {
	ID              string    `json:"id"`
	Filename        string    `json:"filename,omitempty"`
	OriginalName    string    `json:"originalName,omitempty"`
	UploadDate      time.Time `json:"uploadDate"`
	Category        string    `json:"category"`
	Summary         string    `json:"summary"`
	Skills          []string  `json:"skills"`
	ExperienceYears int       `json:"experienceYears"`
	EducationLevel  string    `json:"educationLevel"`
}

// UnmarshalJSON accepts the legacy "experience" field some producers still send
// in place of "experienceYears".
func (c *CandidateRecord) UnmarshalJSON(data []byte) error {
	type plain CandidateRecord
	aux := struct {
		*plain
		Experience *int `json:"experience"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Experience != nil && c.ExperienceYears == 0 {
		c.ExperienceYears = *aux.Experience
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	return nil
}

// SearchResult pairs a candidate with its ranking signal. The record is shared
// with the collection it came from, not copied.
type SearchResult struct {
	Resume      *CandidateRecord `json:"resume"`
	MatchScore  int              `json:"matchScore"`
	MatchReason *string          `json:"matchReason,omitempty"`
}
