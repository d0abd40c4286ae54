package model

import (
	"time"
)

type UserRole string

const (
	RoleMember   UserRole = "member"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           string    `json:"id"       bson:"_id"`
	Email        string    `json:"email"    bson:"email"`
	DisplayName  string    `json:"displayName" bson:"display_name"`
	Pronouns     string    `json:"pronouns,omitempty" bson:"pronouns,omitempty"`
	Role         UserRole  `json:"role"     bson:"role"`
	PasswordHash string    `json:"-"        bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
