package http

import (
	"encoding/json"
	"time"
)

// SubmitVoteRequest keeps scores raw so that non-numeric entries can be
// coerced instead of failing the decode.
type SubmitVoteRequest struct {
	ArtworkID string          `json:"artworkId"`
	Scores    json.RawMessage `json:"scores"`
	Comment   string          `json:"comment"`
}

type ScoresResponse struct {
	TechniqueExecution    float64 `json:"techniqueExecution"`
	CreativityOriginality float64 `json:"creativityOriginality"`
	ConceptMessage        float64 `json:"conceptMessage"`
	AestheticImpact       float64 `json:"aestheticImpact"`
}

type VoteResponse struct {
	VoteID     string         `json:"id"`
	JudgeID    string         `json:"judgeId"`
	ArtworkID  string         `json:"artworkId"`
	Category   string         `json:"category"`
	Scores     ScoresResponse `json:"scores"`
	TotalScore float64        `json:"totalScore"`
	Comment    string         `json:"comment"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	WasUpdate  bool           `json:"wasUpdate,omitempty"`
}

type VoteDetailResponse struct {
	VoteResponse
	JudgeName    string `json:"judgeName,omitempty"`
	ArtworkTitle string `json:"artworkTitle,omitempty"`
	ArtworkCode  string `json:"artworkCode,omitempty"`
}

type VoteListResponse struct {
	Votes []VoteDetailResponse `json:"votes"`
}

type ArtworkStatsResponse struct {
	ArtworkID   string  `json:"artworkId"`
	Category    string  `json:"category"`
	TotalVotes  int     `json:"totalVotes"`
	TotalScore  float64 `json:"totalScore"`
	AvgScore    float64 `json:"avgScore"`
	Title       string  `json:"title"`
	ArtistName  string  `json:"artistName"`
	ArtworkCode string  `json:"artworkCode"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type ResultsResponse struct {
	Votes                 []VoteDetailResponse              `json:"votes"`
	ArtworkStats          []ArtworkStatsResponse            `json:"artworkStats"`
	TopArtworksByCategory map[string][]ArtworkStatsResponse `json:"topArtworksByCategory"`
	Categories            []string                          `json:"categories"`
}
