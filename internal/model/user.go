package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	// Binary collation keeps the unique index case-sensitive; MySQL's
	// default utf8mb4 collation would treat A@x and a@x as the same key.
	Email        string    `gorm:"type:varchar(180) COLLATE utf8mb4_bin;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Roles        []string  `gorm:"serializer:json;type:text;not null" json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
