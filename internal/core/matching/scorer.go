package matching

import (
	"fmt"
	"strings"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// Field weights. Skills are the strongest signal of fit, the free-text summary
// the weakest.
const (
	SummaryWeight  = 1
	CategoryWeight = 2
	SkillWeight    = 3
)

// Score is the per-field breakdown of one candidate against one query.
type Score struct {
	SummaryMatches  int
	CategoryMatches int
	SkillMatches    int
	// MatchedSkills holds the skills that contain at least one token, in
	// their original casing and order.
	MatchedSkills []string
}

// Total is the weighted sum used for ranking.
func (s Score) Total() int {
	return s.SummaryMatches*SummaryWeight + s.CategoryMatches*CategoryWeight + s.SkillMatches*SkillWeight
}

// ScoreCandidate scores c against already tokenized query terms.
func ScoreCandidate(tokens []string, c *domain.CandidateRecord) Score {
	var s Score
	if c == nil || len(tokens) == 0 {
		return s
	}

	summary := strings.ToLower(c.Summary)
	category := strings.ToLower(c.Category)
	skills := make([]string, len(c.Skills))
	for i, skill := range c.Skills {
		skills[i] = strings.ToLower(skill)
	}

	for _, tok := range tokens {
		if strings.Contains(summary, tok) {
			s.SummaryMatches++
		}
		if strings.Contains(category, tok) {
			s.CategoryMatches++
		}
		for _, skill := range skills {
			if strings.Contains(skill, tok) {
				s.SkillMatches++
			}
		}
	}

	if s.SkillMatches > 0 {
		for i, skill := range skills {
			for _, tok := range tokens {
				if strings.Contains(skill, tok) {
					s.MatchedSkills = append(s.MatchedSkills, c.Skills[i])
					break
				}
			}
		}
	}
	return s
}

// Reason builds the human-readable explanation for a scored candidate. It
// returns nil when no clause applies.
func Reason(tokens []string, c *domain.CandidateRecord, s Score) *string {
	var b strings.Builder
	if s.SkillMatches > 0 {
		fmt.Fprintf(&b, "Matched skills: %s. ", strings.Join(s.MatchedSkills, ", "))
	}
	if s.CategoryMatches > 0 {
		fmt.Fprintf(&b, "Matching job category: %s. ", c.Category)
	}
	if c.ExperienceYears > 0 && mentionsExperience(tokens) {
		fmt.Fprintf(&b, "%d years of experience. ", c.ExperienceYears)
	}
	if b.Len() == 0 {
		return nil
	}
	reason := b.String()
	return &reason
}
