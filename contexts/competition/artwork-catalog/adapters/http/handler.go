package httpadapter

import (
	"context"
	"log/slog"
	"strconv"

	"artjury/contexts/competition/artwork-catalog/application/commands"
	"artjury/contexts/competition/artwork-catalog/application/queries"
	"artjury/contexts/competition/artwork-catalog/domain/entities"
	httptransport "artjury/contexts/competition/artwork-catalog/transport/http"
	"artjury/internal/shared/access"
	"artjury/internal/shared/validation"
)

type Handler struct {
	Artworks commands.ArtworkUseCase
	Ordering commands.OrderingUseCase
	Queries  queries.ArtworkQueryService
	Logger   *slog.Logger
}

func (h Handler) ListArtworksHandler(ctx context.Context, actor access.Actor) (httptransport.ArtworkListResponse, error) {
	items, err := h.Queries.ListArtworks(ctx, actor)
	if err != nil {
		return httptransport.ArtworkListResponse{}, err
	}
	return httptransport.ArtworkListResponse{Artworks: mapArtworks(items)}, nil
}

func (h Handler) GetArtworkHandler(ctx context.Context, actor access.Actor, artworkID string) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Queries.GetArtwork(ctx, actor, artworkID)
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return mapArtwork(artwork), nil
}

func (h Handler) GalleryHandler(ctx context.Context, actor access.Actor, category string) (httptransport.GalleryResponse, error) {
	items, err := h.Queries.ListByCategory(ctx, actor, category)
	if err != nil {
		return httptransport.GalleryResponse{}, err
	}
	return httptransport.GalleryResponse{
		Category: category,
		Artworks: mapArtworks(items),
	}, nil
}

func (h Handler) CreateArtworkHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.CreateArtworkRequest,
) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Artworks.CreateArtwork(ctx, actor, commands.CreateArtworkCommand{
		ArtworkCode:         req.ArtworkCode,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		ArtistName:          req.ArtistName,
		ImageURL:            req.ImageURL,
		OrderWithinCategory: req.OrderWithinCategory,
	})
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return mapArtwork(artwork), nil
}

func (h Handler) UpdateArtworkHandler(
	ctx context.Context,
	actor access.Actor,
	artworkID string,
	req httptransport.UpdateArtworkRequest,
) (httptransport.ArtworkResponse, error) {
	artwork, err := h.Artworks.UpdateArtwork(ctx, actor, commands.UpdateArtworkCommand{
		ArtworkID:           artworkID,
		ArtworkCode:         req.ArtworkCode,
		Title:               req.Title,
		Description:         req.Description,
		Category:            req.Category,
		ArtistName:          req.ArtistName,
		ImageURL:            req.ImageURL,
		OrderWithinCategory: req.OrderWithinCategory,
	})
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return mapArtwork(artwork), nil
}

func (h Handler) SetOrderHandler(
	ctx context.Context,
	actor access.Actor,
	artworkID string,
	req httptransport.SetOrderRequest,
) (httptransport.ArtworkResponse, error) {
	if req.OrderWithinCategory == nil {
		return httptransport.ArtworkResponse{}, validation.Field("orderWithinCategory", "is required")
	}
	artwork, err := h.Ordering.SetOrder(ctx, actor, artworkID, *req.OrderWithinCategory)
	if err != nil {
		return httptransport.ArtworkResponse{}, err
	}
	return mapArtwork(artwork), nil
}

func (h Handler) SwapOrderHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.SwapOrderRequest,
) (httptransport.SwapOrderResponse, error) {
	result, err := h.Ordering.SwapOrder(ctx, actor, req.FirstArtworkID, req.SecondArtworkID)
	if err != nil {
		return httptransport.SwapOrderResponse{}, err
	}
	return httptransport.SwapOrderResponse{
		First:  mapArtwork(result.First),
		Second: mapArtwork(result.Second),
	}, nil
}

func (h Handler) ReorderHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.ReorderRequest,
) (httptransport.ReorderResponse, error) {
	items := make([]commands.ReorderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ReorderItem{
			ArtworkID:           item.ArtworkID,
			OrderWithinCategory: item.OrderWithinCategory,
		})
	}
	results, err := h.Ordering.Reorder(ctx, actor, items)
	if err != nil {
		return httptransport.ReorderResponse{}, err
	}
	resp := httptransport.ReorderResponse{Results: make([]httptransport.ReorderResult, 0, len(results))}
	for _, result := range results {
		row := httptransport.ReorderResult{ArtworkID: result.ArtworkID}
		if result.Err != nil {
			row.Error = result.Err.Error()
		} else {
			artwork := mapArtwork(result.Artwork)
			row.Success = true
			row.Artwork = &artwork
		}
		resp.Results = append(resp.Results, row)
	}
	return resp, nil
}

func (h Handler) BulkUploadHandler(
	ctx context.Context,
	actor access.Actor,
	req httptransport.BulkUploadRequest,
) (httptransport.BulkUploadResponse, error) {
	rows := make([]commands.ImportRow, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, commands.ImportRow{
			ArtworkCode:         row.ArtworkCode,
			Title:               row.Title,
			Description:         row.Description,
			Category:            row.Category,
			ArtistName:          row.ArtistName,
			ImageURL:            row.ImageURL,
			OrderWithinCategory: orderText(row.OrderWithinCategory),
		})
	}
	results, err := h.Artworks.BulkImport(ctx, actor, rows)
	if err != nil {
		return httptransport.BulkUploadResponse{}, err
	}

	resp := httptransport.BulkUploadResponse{
		Results: make([]httptransport.BulkUploadResult, 0, len(results)),
	}
	for _, result := range results {
		if result.Success {
			resp.Created++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, httptransport.BulkUploadResult{
			ArtworkCode: result.ArtworkCode,
			Success:     result.Success,
			Error:       result.Error,
		})
	}
	return resp, nil
}

func orderText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func mapArtworks(items []entities.Artwork) []httptransport.ArtworkResponse {
	out := make([]httptransport.ArtworkResponse, 0, len(items))
	for _, item := range items {
		out = append(out, mapArtwork(item))
	}
	return out
}

func mapArtwork(artwork entities.Artwork) httptransport.ArtworkResponse {
	return httptransport.ArtworkResponse{
		ArtworkID:           artwork.ArtworkID,
		ArtworkCode:         artwork.ArtworkCode,
		Title:               artwork.Title,
		Description:         artwork.Description,
		Category:            string(artwork.Category),
		ArtistName:          artwork.ArtistName,
		ImageURL:            artwork.ImageURL,
		OrderWithinCategory: artwork.OrderWithinCategory,
		CreatedAt:           artwork.CreatedAt,
		UpdatedAt:           artwork.UpdatedAt,
	}
}
