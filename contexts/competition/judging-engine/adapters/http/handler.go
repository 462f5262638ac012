package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"artjury/contexts/competition/judging-engine/application/commands"
	"artjury/contexts/competition/judging-engine/application/queries"
	"artjury/contexts/competition/judging-engine/domain/entities"
	"artjury/contexts/competition/judging-engine/domain/services"
	httptransport "artjury/contexts/competition/judging-engine/transport/http"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"
)

type Handler struct {
	Votes   commands.VoteUseCase
	MyVotes queries.MyVotesQueryService
	Results queries.ResultsQueryService
	Logger  *slog.Logger
}

func (h Handler) SubmitVoteHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.SubmitVoteRequest,
) (httptransport.VoteResponse, error) {
	scores, err := decodeScores(req.Scores)
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	result, err := h.Votes.SubmitVote(ctx, actor, commands.SubmitVoteCommand{
		ArtworkID: req.ArtworkID,
		Scores:    scores,
		Comment:   req.Comment,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	resp := mapVote(result.Vote)
	resp.WasUpdate = result.WasUpdate
	return resp, nil
}

func (h Handler) DeleteVoteHandler(ctx context.Context, actor access.Actor, voteID string) error {
	return h.Votes.DeleteVote(ctx, actor, voteID)
}

func (h Handler) MyVotesHandler(ctx context.Context, actor access.Actor) (httptransport.VoteListResponse, error) {
	views, err := h.MyVotes.ListMyVotes(ctx, actor)
	if err != nil {
		return httptransport.VoteListResponse{}, err
	}
	return httptransport.VoteListResponse{Votes: mapVoteViews(views)}, nil
}

func (h Handler) ResultsHandler(ctx context.Context, actor access.Actor, limit int) (httptransport.ResultsResponse, error) {
	results, err := h.Results.Results(ctx, actor, limit)
	if err != nil {
		return httptransport.ResultsResponse{}, err
	}
	resp := httptransport.ResultsResponse{
		Votes:                 mapVoteViews(results.Votes),
		ArtworkStats:          mapStats(results.ArtworkStats),
		TopArtworksByCategory: make(map[string][]httptransport.ArtworkStatsResponse, len(results.Categories)),
		Categories:            access.CategoryStrings(results.Categories),
	}
	for _, category := range results.Categories {
		resp.TopArtworksByCategory[string(category)] = mapStats(results.TopByCategory[category])
	}
	return resp, nil
}

// decodeScores accepts a JSON object or nothing. Any other shape is rejected.
// Numbers stay json.Number so values outside float64 range reach score
// coercion instead of failing the whole decode.
func decodeScores(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return nil, validation.Field("scores", "must be an object")
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	var scores map[string]any
	if err := decoder.Decode(&scores); err != nil {
		return nil, validation.Field("scores", "must be an object")
	}
	return scores, nil
}

func mapVote(vote entities.Vote) httptransport.VoteResponse {
	return httptransport.VoteResponse{
		VoteID:    vote.VoteID,
		JudgeID:   vote.JudgeID,
		ArtworkID: vote.ArtworkID,
		Category:  string(vote.Category),
		Scores: httptransport.ScoresResponse{
			TechniqueExecution:    vote.Scores.TechniqueExecution,
			CreativityOriginality: vote.Scores.CreativityOriginality,
			ConceptMessage:        vote.Scores.ConceptMessage,
			AestheticImpact:       vote.Scores.AestheticImpact,
		},
		TotalScore: services.ComputeVoteTotalScore(vote.Scores),
		Comment:    vote.Comment,
		CreatedAt:  vote.CreatedAt,
		UpdatedAt:  vote.UpdatedAt,
	}
}

func mapVoteViews(views []queries.VoteView) []httptransport.VoteDetailResponse {
	out := make([]httptransport.VoteDetailResponse, 0, len(views))
	for _, view := range views {
		out = append(out, httptransport.VoteDetailResponse{
			VoteResponse: mapVote(view.Vote),
			JudgeName:    view.JudgeName,
			ArtworkTitle: view.Title,
			ArtworkCode:  view.ArtworkCode,
		})
	}
	return out
}

func mapStats(stats []entities.ArtworkStats) []httptransport.ArtworkStatsResponse {
	out := make([]httptransport.ArtworkStatsResponse, 0, len(stats))
	for _, entry := range stats {
		out = append(out, httptransport.ArtworkStatsResponse{
			ArtworkID:   entry.ArtworkID,
			Category:    string(entry.Category),
			TotalVotes:  entry.TotalVotes,
			TotalScore:  entry.TotalScore,
			AvgScore:    entry.AvgScore,
			Title:       entry.Title,
			ArtistName:  entry.ArtistName,
			ArtworkCode: entry.ArtworkCode,
			ImageURL:    entry.ImageURL,
		})
	}
	return out
}
