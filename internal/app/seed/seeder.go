package seed

import (
	"context"
	"errors"
	"log/slog"

	catalogcommands "artjury/contexts/competition/artwork-catalog/application/commands"
	catalogerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	panelcommands "artjury/contexts/identity-access/panel-service/application/commands"
	panelerrors "artjury/contexts/identity-access/panel-service/domain/errors"
	"artjury/internal/shared/access"
)

// seedActor is the admin identity judge and artwork writes run as.
var seedActor = access.Admin("seed")

type Report struct {
	Created int
	Skipped int
}

type Seeder struct {
	Admins   panelcommands.AdminUseCase
	Judges   panelcommands.JudgeUseCase
	Artworks catalogcommands.ArtworkUseCase
	Logger   *slog.Logger
}

func (s Seeder) SeedAll(ctx context.Context, fixture Fixture) (map[string]Report, error) {
	out := make(map[string]Report, 3)
	var err error
	if out["admins"], err = s.SeedAdmins(ctx, fixture.Admins); err != nil {
		return out, err
	}
	if out["judges"], err = s.SeedJudges(ctx, fixture.Judges); err != nil {
		return out, err
	}
	if out["artworks"], err = s.SeedArtworks(ctx, fixture.Artworks); err != nil {
		return out, err
	}
	return out, nil
}

func (s Seeder) SeedAdmins(ctx context.Context, admins []Admin) (Report, error) {
	var report Report
	for _, admin := range admins {
		_, err := s.Admins.CreateAdmin(ctx, panelcommands.CreateAdminCommand{
			Username: admin.Username,
			Name:     admin.Name,
			Password: admin.Password,
		})
		if err := s.tally(&report, err, panelerrors.ErrUsernameTaken, "admin", admin.Username); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s Seeder) SeedJudges(ctx context.Context, judges []Judge) (Report, error) {
	var report Report
	for _, judge := range judges {
		_, err := s.Judges.CreateJudge(ctx, seedActor, panelcommands.CreateJudgeCommand{
			Username:   judge.Username,
			Name:       judge.Name,
			Password:   judge.Password,
			Categories: judge.Categories,
		})
		if err := s.tally(&report, err, panelerrors.ErrUsernameTaken, "judge", judge.Username); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s Seeder) SeedArtworks(ctx context.Context, artworks []Artwork) (Report, error) {
	var report Report
	for _, artwork := range artworks {
		_, err := s.Artworks.CreateArtwork(ctx, seedActor, catalogcommands.CreateArtworkCommand{
			ArtworkCode:         artwork.ArtworkCode,
			Title:               artwork.Title,
			Description:         artwork.Description,
			Category:            artwork.Category,
			ArtistName:          artwork.ArtistName,
			ImageURL:            artwork.ImageURL,
			OrderWithinCategory: artwork.OrderWithinCategory,
		})
		if err := s.tally(&report, err, catalogerrors.ErrDuplicateArtworkCode, "artwork", artwork.ArtworkCode); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (s Seeder) tally(report *Report, err error, existsErr error, kind string, key string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch {
	case err == nil:
		report.Created++
		logger.Info("seed record created",
			"event", "seed_record_created",
			"module", "internal/app/seed",
			"layer", "platform",
			"kind", kind,
			"key", key,
		)
		return nil
	case errors.Is(err, existsErr):
		report.Skipped++
		logger.Info("seed record already exists",
			"event", "seed_record_skipped",
			"module", "internal/app/seed",
			"layer", "platform",
			"kind", kind,
			"key", key,
		)
		return nil
	default:
		return err
	}
}
