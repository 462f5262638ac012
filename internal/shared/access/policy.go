package access

import (
	"errors"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// VisibleCategories returns the categories whose artworks the actor may list.
// Anonymous actors and judges without categories get nothing.
func VisibleCategories(actor Actor) []Category {
	switch {
	case actor.IsAdmin():
		return Categories()
	case actor.IsJudge():
		out := make([]Category, 0, len(actor.Categories))
		seen := make(map[Category]struct{}, len(actor.Categories))
		for _, category := range actor.Categories {
			if !category.Valid() {
				continue
			}
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			out = append(out, category)
		}
		return out
	default:
		return nil
	}
}

func CanViewCategory(actor Actor, category Category) bool {
	for _, visible := range VisibleCategories(actor) {
		if visible == category {
			return true
		}
	}
	return false
}

// RequireAdmin guards artwork mutations, judge management and results.
func RequireAdmin(actor Actor) error {
	if actor.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// RequireVotingJudge guards vote submission. The artwork category is not
// compared with the judge's assigned categories here.
func RequireVotingJudge(actor Actor) error {
	if actor.IsAnonymous() {
		return ErrUnauthenticated
	}
	if !actor.IsJudge() || len(VisibleCategories(actor)) == 0 {
		return ErrForbidden
	}
	return nil
}

func CanDeleteVote(actor Actor, ownerJudgeID string) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.IsJudge() && strings.TrimSpace(ownerJudgeID) != "" && actor.ID == strings.TrimSpace(ownerJudgeID)
}
