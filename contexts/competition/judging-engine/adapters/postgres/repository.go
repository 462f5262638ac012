package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"artjury/contexts/competition/judging-engine/domain/entities"
	domainerrors "artjury/contexts/competition/judging-engine/domain/errors"
	"artjury/contexts/competition/judging-engine/ports"
	"artjury/internal/shared/access"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the votes table with its unique (judge_id, artwork_id)
// index.
func (r *Repository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&voteModel{}); err != nil {
		return r.logError("judging_repo_migrate_failed", err)
	}
	return nil
}

// UpsertVote relies on the unique index: a concurrent first write for the
// same pair turns into an update of the winning row.
func (r *Repository) UpsertVote(ctx context.Context, vote entities.Vote) (entities.Vote, error) {
	row := voteModelFromEntity(vote)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "judge_id"}, {Name: "artwork_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"category":               row.Category,
			"technique_execution":    row.TechniqueExecution,
			"creativity_originality": row.CreativityOriginality,
			"concept_message":        row.ConceptMessage,
			"aesthetic_impact":       row.AestheticImpact,
			"comment":                row.Comment,
			"updated_at":             row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return entities.Vote{}, domainerrors.ErrVoteConflict
		}
		return entities.Vote{}, r.logError("judging_repo_upsert_vote_failed", create.Error,
			"vote_id", row.ID,
			"judge_id", row.JudgeID,
			"artwork_id", row.ArtworkID,
		)
	}

	stored, found, err := r.GetVoteByIdentity(ctx, row.JudgeID, row.ArtworkID)
	if err != nil {
		return entities.Vote{}, err
	}
	if !found {
		return entities.Vote{}, r.logError("judging_repo_upsert_vote_missing", domainerrors.ErrVoteNotFound,
			"judge_id", row.JudgeID,
			"artwork_id", row.ArtworkID,
		)
	}
	return stored, nil
}

func (r *Repository) GetVote(ctx context.Context, voteID string) (entities.Vote, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(voteID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, domainerrors.ErrVoteNotFound
		}
		return entities.Vote{}, r.logError("judging_repo_get_vote_failed", err, "vote_id", strings.TrimSpace(voteID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetVoteByIdentity(ctx context.Context, judgeID string, artworkID string) (entities.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("judge_id = ?", strings.TrimSpace(judgeID)).
		Where("artwork_id = ?", strings.TrimSpace(artworkID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, false, nil
		}
		return entities.Vote{}, false, r.logError("judging_repo_get_vote_by_identity_failed", err,
			"judge_id", strings.TrimSpace(judgeID),
			"artwork_id", strings.TrimSpace(artworkID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListVotes(ctx context.Context) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("judging_repo_list_votes_failed", err)
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) ListVotesByJudge(ctx context.Context, judgeID string) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("judge_id = ?", strings.TrimSpace(judgeID)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("judging_repo_list_votes_by_judge_failed", err, "judge_id", strings.TrimSpace(judgeID))
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) DeleteVote(ctx context.Context, voteID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(voteID)).
		Delete(&voteModel{})
	if result.Error != nil {
		return r.logError("judging_repo_delete_vote_failed", result.Error, "vote_id", strings.TrimSpace(voteID))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVoteNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "competition/judging-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("vote repository operation failed", fields...)
	return err
}

type voteModel struct {
	ID                    string    `gorm:"column:id;primaryKey"`
	JudgeID               string    `gorm:"column:judge_id;not null;uniqueIndex:idx_votes_judge_artwork,priority:1"`
	ArtworkID             string    `gorm:"column:artwork_id;not null;uniqueIndex:idx_votes_judge_artwork,priority:2;index:idx_votes_artwork"`
	Category              string    `gorm:"column:category;not null"`
	TechniqueExecution    float64   `gorm:"column:technique_execution;not null"`
	CreativityOriginality float64   `gorm:"column:creativity_originality;not null"`
	ConceptMessage        float64   `gorm:"column:concept_message;not null"`
	AestheticImpact       float64   `gorm:"column:aesthetic_impact;not null"`
	Comment               string    `gorm:"column:comment;type:varchar(500)"`
	CreatedAt             time.Time `gorm:"column:created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func voteModelFromEntity(vote entities.Vote) voteModel {
	return voteModel{
		ID:                    strings.TrimSpace(vote.VoteID),
		JudgeID:               strings.TrimSpace(vote.JudgeID),
		ArtworkID:             strings.TrimSpace(vote.ArtworkID),
		Category:              string(vote.Category),
		TechniqueExecution:    vote.Scores.TechniqueExecution,
		CreativityOriginality: vote.Scores.CreativityOriginality,
		ConceptMessage:        vote.Scores.ConceptMessage,
		AestheticImpact:       vote.Scores.AestheticImpact,
		Comment:               vote.Comment,
		CreatedAt:             vote.CreatedAt.UTC(),
		UpdatedAt:             vote.UpdatedAt.UTC(),
	}
}

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		VoteID:    m.ID,
		JudgeID:   m.JudgeID,
		ArtworkID: m.ArtworkID,
		Category:  access.Category(m.Category),
		Scores: entities.Scores{
			TechniqueExecution:    m.TechniqueExecution,
			CreativityOriginality: m.CreativityOriginality,
			ConceptMessage:        m.ConceptMessage,
			AestheticImpact:       m.AestheticImpact,
		},
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

func toVoteEntities(rows []voteModel) []entities.Vote {
	items := make([]entities.Vote, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.VoteRepository = (*Repository)(nil)
