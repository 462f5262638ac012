package entities

import (
	"math"
	"time"

	"artjury/internal/shared/access"
)

const (
	DefaultMaxScore  = 10.0
	MaxCommentLength = 500
)

// Criterion names match the JSON keys judges submit.
type Criterion string

const (
	CriterionTechniqueExecution    Criterion = "techniqueExecution"
	CriterionCreativityOriginality Criterion = "creativityOriginality"
	CriterionConceptMessage        Criterion = "conceptMessage"
	CriterionAestheticImpact       Criterion = "aestheticImpact"
)

func Criteria() []Criterion {
	return []Criterion{
		CriterionTechniqueExecution,
		CriterionCreativityOriginality,
		CriterionConceptMessage,
		CriterionAestheticImpact,
	}
}

type Scores struct {
	TechniqueExecution    float64
	CreativityOriginality float64
	ConceptMessage        float64
	AestheticImpact       float64
}

func (s Scores) Get(criterion Criterion) float64 {
	switch criterion {
	case CriterionTechniqueExecution:
		return s.TechniqueExecution
	case CriterionCreativityOriginality:
		return s.CreativityOriginality
	case CriterionConceptMessage:
		return s.ConceptMessage
	case CriterionAestheticImpact:
		return s.AestheticImpact
	default:
		return 0
	}
}

func (s *Scores) set(criterion Criterion, value float64) {
	switch criterion {
	case CriterionTechniqueExecution:
		s.TechniqueExecution = value
	case CriterionCreativityOriginality:
		s.CreativityOriginality = value
	case CriterionConceptMessage:
		s.ConceptMessage = value
	case CriterionAestheticImpact:
		s.AestheticImpact = value
	}
}

// CoerceScores turns a decoded JSON object into Scores. Missing, null and
// non-numeric entries become 0, numbers are clamped to [0, maxScore] and
// unknown keys are ignored. maxScore <= 0 means DefaultMaxScore.
func CoerceScores(raw map[string]any, maxScore float64) Scores {
	if maxScore <= 0 || math.IsNaN(maxScore) || math.IsInf(maxScore, 0) {
		maxScore = DefaultMaxScore
	}
	var scores Scores
	for _, criterion := range Criteria() {
		value, ok := numeric(raw[string(criterion)])
		if !ok {
			continue
		}
		scores.set(criterion, math.Min(math.Max(value, 0), maxScore))
	}
	return scores
}

func numeric(value any) (float64, bool) {
	var out float64
	switch v := value.(type) {
	case float64:
		out = v
	case float32:
		out = float64(v)
	case int:
		out = float64(v)
	case int32:
		out = float64(v)
	case int64:
		out = float64(v)
	case uint:
		out = float64(v)
	case uint32:
		out = float64(v)
	case uint64:
		out = float64(v)
	case interface{ Float64() (float64, error) }:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		out = f
	default:
		return 0, false
	}
	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, false
	}
	return out, true
}

type Vote struct {
	VoteID    string
	JudgeID   string
	ArtworkID string
	// Category is copied from the artwork when the vote is written and is
	// only refreshed on resubmission.
	Category  access.Category
	Scores    Scores
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ArtworkSummary is the judging view of a catalog artwork.
type ArtworkSummary struct {
	ArtworkID   string
	ArtworkCode string
	Title       string
	ArtistName  string
	ImageURL    string
	Category    access.Category
}
