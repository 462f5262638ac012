package httpadapter

import (
	"context"
	"log/slog"

	"artjury/contexts/identity-access/panel-service/application/commands"
	"artjury/contexts/identity-access/panel-service/application/queries"
	"artjury/contexts/identity-access/panel-service/domain/entities"
	"artjury/contexts/identity-access/panel-service/ports"
	httptransport "artjury/contexts/identity-access/panel-service/transport/http"
	"artjury/internal/shared/access"
)

type Handler struct {
	Login  commands.LoginUseCase
	Judges commands.JudgeUseCase
	Query  queries.JudgeQueryService
	Tokens ports.TokenIssuer
	Logger *slog.Logger
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	principal, err := h.Login.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	token, expiresAt, err := h.Tokens.IssueToken(principal.Actor, principal.Name)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		Role:       string(principal.Actor.Role),
		UserID:     principal.Actor.ID,
		Username:   principal.Username,
		Name:       principal.Name,
		Categories: access.CategoryStrings(principal.Actor.Categories),
	}, nil
}

func (h Handler) ListJudgesHandler(ctx context.Context, actor access.Actor) (httptransport.JudgeListResponse, error) {
	items, err := h.Query.ListJudges(ctx, actor)
	if err != nil {
		return httptransport.JudgeListResponse{}, err
	}
	resp := httptransport.JudgeListResponse{Judges: make([]httptransport.JudgeResponse, 0, len(items))}
	for _, item := range items {
		resp.Judges = append(resp.Judges, mapJudge(item))
	}
	return resp, nil
}

func (h Handler) CreateJudgeHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.JudgeRequest,
) (httptransport.JudgeResponse, error) {
	judge, err := h.Judges.CreateJudge(ctx, actor, commands.CreateJudgeCommand{
		Username:   req.Username,
		Name:       req.Name,
		Password:   req.Password,
		Categories: req.Categories,
	})
	if err != nil {
		return httptransport.JudgeResponse{}, err
	}
	return mapJudge(judge), nil
}

func (h Handler) UpdateJudgeHandler(
	ctx context.Context,
	actor access.Actor,
	judgeID string,
	req httptransport.JudgeRequest,
) (httptransport.JudgeResponse, error) {
	judge, err := h.Judges.UpdateJudge(ctx, actor, commands.UpdateJudgeCommand{
		JudgeID:    judgeID,
		Username:   req.Username,
		Name:       req.Name,
		Password:   req.Password,
		Categories: req.Categories,
	})
	if err != nil {
		return httptransport.JudgeResponse{}, err
	}
	return mapJudge(judge), nil
}

func (h Handler) DeleteJudgeHandler(ctx context.Context, actor access.Actor, judgeID string) error {
	return h.Judges.DeleteJudge(ctx, actor, judgeID)
}

func mapJudge(judge entities.Judge) httptransport.JudgeResponse {
	return httptransport.JudgeResponse{
		JudgeID:     judge.JudgeID,
		Username:    judge.Username,
		Name:        judge.Name,
		Categories:  access.CategoryStrings(judge.Categories),
		LastLoginAt: judge.LastLoginAt,
		CreatedAt:   judge.CreatedAt,
		UpdatedAt:   judge.UpdatedAt,
	}
}
