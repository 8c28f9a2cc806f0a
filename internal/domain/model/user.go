package model

import "time"

const (
	RoleCreator   = "creator"
	RoleContestee = "contestee"
)

func ValidRole(role string) bool {
	return role == RoleCreator || role == RoleContestee
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not exposed
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"-"`
}
