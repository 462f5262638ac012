package entities

import "artjury/internal/shared/access"

// ArtworkStats exists only for artworks with at least one vote.
type ArtworkStats struct {
	ArtworkID   string
	Category    access.Category
	TotalVotes  int
	TotalScore  float64
	AvgScore    float64
	Title       string
	ArtistName  string
	ArtworkCode string
	ImageURL    string
}
