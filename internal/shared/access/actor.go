package access

import "strings"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleJudge Role = "judge"
)

// Actor is the caller identity supplied by the session layer on every
// operation. The zero value is the anonymous actor.
type Actor struct {
	Role       Role
	ID         string
	Categories []Category
}

func Anonymous() Actor {
	return Actor{}
}

func Admin(id string) Actor {
	return Actor{Role: RoleAdmin, ID: strings.TrimSpace(id)}
}

func Judge(id string, categories ...Category) Actor {
	return Actor{Role: RoleJudge, ID: strings.TrimSpace(id), Categories: categories}
}

func (a Actor) IsAnonymous() bool {
	return strings.TrimSpace(a.ID) == "" || (a.Role != RoleAdmin && a.Role != RoleJudge)
}

func (a Actor) IsAdmin() bool {
	return !a.IsAnonymous() && a.Role == RoleAdmin
}

func (a Actor) IsJudge() bool {
	return !a.IsAnonymous() && a.Role == RoleJudge
}
