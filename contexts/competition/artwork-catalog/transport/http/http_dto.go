package http

import "time"

type ArtworkResponse struct {
	ArtworkID           string    `json:"id"`
	ArtworkCode         string    `json:"artworkCode"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	ArtistName          string    `json:"artistName"`
	ImageURL            string    `json:"imageUrl"`
	OrderWithinCategory int       `json:"orderWithinCategory"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

type ArtworkListResponse struct {
	Artworks []ArtworkResponse `json:"artworks"`
}

type GalleryResponse struct {
	Category string            `json:"category"`
	Artworks []ArtworkResponse `json:"artworks"`
}

type CreateArtworkRequest struct {
	ArtworkCode         string `json:"artworkCode"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	ArtistName          string `json:"artistName"`
	ImageURL            string `json:"imageUrl"`
	OrderWithinCategory int    `json:"orderWithinCategory"`
}

type UpdateArtworkRequest struct {
	ArtworkCode         *string `json:"artworkCode,omitempty"`
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Category            *string `json:"category,omitempty"`
	ArtistName          *string `json:"artistName,omitempty"`
	ImageURL            *string `json:"imageUrl,omitempty"`
	OrderWithinCategory *int    `json:"orderWithinCategory,omitempty"`
}

type SetOrderRequest struct {
	OrderWithinCategory *int `json:"orderWithinCategory"`
}

type SwapOrderRequest struct {
	FirstArtworkID  string `json:"firstArtworkId"`
	SecondArtworkID string `json:"secondArtworkId"`
}

type SwapOrderResponse struct {
	First  ArtworkResponse `json:"first"`
	Second ArtworkResponse `json:"second"`
}

type ReorderItem struct {
	ArtworkID           string `json:"id"`
	OrderWithinCategory int    `json:"orderWithinCategory"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

type ReorderResult struct {
	ArtworkID string           `json:"id"`
	Success   bool             `json:"success"`
	Artwork   *ArtworkResponse `json:"artwork,omitempty"`
	Error     string           `json:"error,omitempty"`
}

type ReorderResponse struct {
	Results []ReorderResult `json:"results"`
}

// BulkUploadRow mirrors one parsed CSV record. OrderWithinCategory may be a
// JSON number or string.
type BulkUploadRow struct {
	ArtworkCode         string `json:"artworkCode"`
	Title               string `json:"title"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	ArtistName          string `json:"artistName"`
	ImageURL            string `json:"imageUrl"`
	OrderWithinCategory any    `json:"orderWithinCategory,omitempty"`
}

type BulkUploadRequest struct {
	Rows []BulkUploadRow `json:"rows"`
}

type BulkUploadResult struct {
	ArtworkCode string `json:"artworkCode"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

type BulkUploadResponse struct {
	Results []BulkUploadResult `json:"results"`
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
}
