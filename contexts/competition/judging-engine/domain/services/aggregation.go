package services

import (
	"math"
	"sort"
	"strings"

	"artjury/contexts/competition/judging-engine/domain/entities"
	"artjury/internal/shared/access"
)

const DefaultTopN = 10

// ComputeVoteTotalScore sums the four criteria. Non-finite values count 0.
func ComputeVoteTotalScore(scores entities.Scores) float64 {
	total := 0.0
	for _, criterion := range entities.Criteria() {
		value := scores.Get(criterion)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}
		total += value
	}
	return total
}

// ComputeArtworkStats groups votes by artwork in first-seen order. Artworks
// without votes never appear in the result. The category of a group is taken
// from its first vote.
//
// A vote without an artwork id breaks the store contract and panics.
func ComputeArtworkStats(votes []entities.Vote) []entities.ArtworkStats {
	index := make(map[string]int, len(votes))
	stats := make([]entities.ArtworkStats, 0)
	for _, vote := range votes {
		artworkID := strings.TrimSpace(vote.ArtworkID)
		if artworkID == "" {
			panic("aggregation: vote " + vote.VoteID + " has no artwork id")
		}
		i, ok := index[artworkID]
		if !ok {
			i = len(stats)
			index[artworkID] = i
			stats = append(stats, entities.ArtworkStats{
				ArtworkID: artworkID,
				Category:  vote.Category,
			})
		}
		stats[i].TotalVotes++
		stats[i].TotalScore += ComputeVoteTotalScore(vote.Scores)
	}
	for i := range stats {
		stats[i].AvgScore = average(stats[i].TotalScore, stats[i].TotalVotes)
	}
	return stats
}

// JoinArtworkDetails copies display fields onto each entry and drops entries
// whose artwork no longer exists.
func JoinArtworkDetails(stats []entities.ArtworkStats, details map[string]entities.ArtworkSummary) []entities.ArtworkStats {
	out := make([]entities.ArtworkStats, 0, len(stats))
	for _, entry := range stats {
		artwork, ok := details[entry.ArtworkID]
		if !ok {
			continue
		}
		entry.Title = artwork.Title
		entry.ArtistName = artwork.ArtistName
		entry.ArtworkCode = artwork.ArtworkCode
		entry.ImageURL = artwork.ImageURL
		out = append(out, entry)
	}
	return out
}

// ComputeTopNByCategory ranks each category by total score, highest first,
// ties broken by ascending artwork id. Every requested category gets an
// entry, possibly empty. n <= 0 means DefaultTopN.
func ComputeTopNByCategory(
	stats []entities.ArtworkStats,
	categories []access.Category,
	n int,
) map[access.Category][]entities.ArtworkStats {
	if n <= 0 {
		n = DefaultTopN
	}
	top := make(map[access.Category][]entities.ArtworkStats, len(categories))
	for _, category := range categories {
		ranked := make([]entities.ArtworkStats, 0)
		for _, entry := range stats {
			if entry.Category == category {
				ranked = append(ranked, entry)
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].TotalScore != ranked[j].TotalScore {
				return ranked[i].TotalScore > ranked[j].TotalScore
			}
			return ranked[i].ArtworkID < ranked[j].ArtworkID
		})
		if len(ranked) > n {
			ranked = ranked[:n]
		}
		top[category] = ranked
	}
	return top
}

func average(total float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	avg := total / float64(count)
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0
	}
	return avg
}
