package models

import (
	"time"
)

type Role string

const (
	RoleUser         Role = "USER"
	RoleProfessional Role = "PROFESSIONAL"
	RoleAdmin        Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             uint          `json:"id" gorm:"primaryKey"`
	Name           string        `json:"name"`
	Email          string        `json:"email" gorm:"unique"`
	HashedPassword string        `json:"-"`
	Role           Role          `json:"role" gorm:"type:varchar(20);default:'USER'"`
	Phone          string        `json:"phone,omitempty"`
	Address        string        `json:"address,omitempty"`
	ProfilePicture string        `json:"profile_picture,omitempty"`
	Professional   *Professional `json:"professional,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
