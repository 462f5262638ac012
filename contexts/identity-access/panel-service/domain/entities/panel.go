package entities

import (
	"time"

	"artjury/internal/shared/access"
)

const MinPasswordLength = 6

type Judge struct {
	JudgeID      string
	Username     string
	Name         string
	PasswordHash string
	Categories   []access.Category
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (j Judge) Actor() access.Actor {
	return access.Judge(j.JudgeID, j.Categories...)
}

type Admin struct {
	AdminID      string
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a Admin) Actor() access.Actor {
	return access.Admin(a.AdminID)
}

// Principal is an authenticated panel member.
type Principal struct {
	Actor    access.Actor
	Username string
	Name     string
}
