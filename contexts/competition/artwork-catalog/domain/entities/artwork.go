package entities

import (
	"time"

	"artjury/internal/shared/access"
)

type Artwork struct {
	ArtworkID           string
	ArtworkCode         string
	Title               string
	Description         string
	Category            access.Category
	ArtistName          string
	ImageURL            string
	OrderWithinCategory int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ArtworkDetails is the display projection joined into vote statistics.
type ArtworkDetails struct {
	ArtworkID   string
	ArtworkCode string
	Title       string
	ArtistName  string
	ImageURL    string
	Category    access.Category
}

func (a Artwork) Details() ArtworkDetails {
	return ArtworkDetails{
		ArtworkID:   a.ArtworkID,
		ArtworkCode: a.ArtworkCode,
		Title:       a.Title,
		ArtistName:  a.ArtistName,
		ImageURL:    a.ImageURL,
		Category:    a.Category,
	}
}
