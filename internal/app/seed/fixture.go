// Package seed provisions administrators, judges and artworks from a YAML
// fixture. Records that already exist are skipped.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Admins   []Admin   `yaml:"admins"`
	Judges   []Judge   `yaml:"judges"`
	Artworks []Artwork `yaml:"artworks"`
}

type Admin struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type Judge struct {
	Username   string   `yaml:"username"`
	Name       string   `yaml:"name"`
	Password   string   `yaml:"password"`
	Categories []string `yaml:"categories"`
}

type Artwork struct {
	ArtworkCode         string `yaml:"artwork_code"`
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Category            string `yaml:"category"`
	ArtistName          string `yaml:"artist_name"`
	ImageURL            string `yaml:"image_url"`
	OrderWithinCategory int    `yaml:"order_within_category"`
}

func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read seed fixture: %w", err)
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode seed fixture: %w", err)
	}
	return fixture, nil
}

// DefaultFixture is the demo panel and a small catalog.
func DefaultFixture() Fixture {
	return Fixture{
		Admins: []Admin{
			{Username: "admin", Name: "Admin User", Password: "adminpass"},
		},
		Judges: []Judge{
			{Username: "judge1", Name: "Judge One", Password: "judgepass", Categories: []string{"Photography", "Digital Painting"}},
			{Username: "judge2", Name: "Judge Two", Password: "judgepass", Categories: []string{"Photography"}},
		},
		Artworks: []Artwork{
			{
				ArtworkCode: "PHO-001", Title: "Sunset Boulevard", Category: "Photography",
				Description: "A vibrant sunset over the city skyline.", ArtistName: "Alice Smith",
				ImageURL: "https://picsum.photos/id/1015/400/300", OrderWithinCategory: 1,
			},
			{
				ArtworkCode: "PAI-002", Title: "Forest Dreams", Category: "Paintings",
				Description: "A dreamy painting of a lush green forest.", ArtistName: "Bob Lee",
				ImageURL: "https://picsum.photos/id/1025/400/300", OrderWithinCategory: 1,
			},
			{
				ArtworkCode: "DIG-003", Title: "Digital Mirage", Category: "Digital Painting",
				Description: "A surreal digital painting blending nature and technology.", ArtistName: "Clara Zhang",
				ImageURL: "https://picsum.photos/id/1035/400/300", OrderWithinCategory: 1,
			},
			{
				ArtworkCode: "DRA-004", Title: "The Thinker", Category: "Drawing",
				Description: "A pencil drawing capturing a moment of deep thought.", ArtistName: "David Kim",
				ImageURL: "https://picsum.photos/id/1045/400/300", OrderWithinCategory: 1,
			},
			{
				ArtworkCode: "PHO-005", Title: "Urban Reflections", Category: "Photography",
				Description: "City lights reflected on wet pavement.", ArtistName: "Elena Rossi",
				ImageURL: "https://picsum.photos/id/1055/400/300", OrderWithinCategory: 2,
			},
			{
				ArtworkCode: "PAI-006", Title: "Colorful Chaos", Category: "Paintings",
				Description: "An abstract painting full of energy and color.", ArtistName: "Faisal Ahmed",
				ImageURL: "https://picsum.photos/id/1065/400/300", OrderWithinCategory: 2,
			},
		},
	}
}
