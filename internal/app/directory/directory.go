// Package directory adapts one bounded context's queries to the read ports
// another context declares, so contexts never import each other.
package directory

import (
	"context"
	"errors"

	catalogqueries "artjury/contexts/competition/artwork-catalog/application/queries"
	catalogerrors "artjury/contexts/competition/artwork-catalog/domain/errors"
	judgingentities "artjury/contexts/competition/judging-engine/domain/entities"
	judgingerrors "artjury/contexts/competition/judging-engine/domain/errors"
	judgingports "artjury/contexts/competition/judging-engine/ports"
	panelqueries "artjury/contexts/identity-access/panel-service/application/queries"
)

// Artworks serves the judging engine from the artwork catalog.
type Artworks struct {
	Catalog catalogqueries.ArtworkQueryService
}

func (a Artworks) FindArtwork(ctx context.Context, artworkID string) (judgingentities.ArtworkSummary, error) {
	artwork, err := a.Catalog.FindArtwork(ctx, artworkID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrArtworkNotFound) {
			return judgingentities.ArtworkSummary{}, judgingerrors.ErrArtworkNotFound
		}
		return judgingentities.ArtworkSummary{}, err
	}
	details := artwork.Details()
	return judgingentities.ArtworkSummary{
		ArtworkID:   details.ArtworkID,
		ArtworkCode: details.ArtworkCode,
		Title:       details.Title,
		ArtistName:  details.ArtistName,
		ImageURL:    details.ImageURL,
		Category:    details.Category,
	}, nil
}

func (a Artworks) ArtworkSummaries(ctx context.Context, artworkIDs []string) (map[string]judgingentities.ArtworkSummary, error) {
	details, err := a.Catalog.ArtworkDetails(ctx, artworkIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[string]judgingentities.ArtworkSummary, len(details))
	for id, item := range details {
		out[id] = judgingentities.ArtworkSummary{
			ArtworkID:   item.ArtworkID,
			ArtworkCode: item.ArtworkCode,
			Title:       item.Title,
			ArtistName:  item.ArtistName,
			ImageURL:    item.ImageURL,
			Category:    item.Category,
		}
	}
	return out, nil
}

// Judges serves judge display names from the panel service.
type Judges struct {
	Panel panelqueries.JudgeQueryService
}

func (j Judges) JudgeNames(ctx context.Context, judgeIDs []string) (map[string]string, error) {
	return j.Panel.JudgeNames(ctx, judgeIDs)
}

var _ judgingports.ArtworkDirectory = Artworks{}
var _ judgingports.JudgeDirectory = Judges{}
