package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email       string    `gorm:"uniqueIndex;not null"`
	Name        string
	Password    string `gorm:"not null"` // bcrypt hash, never the plaintext
	IsActive    bool   `gorm:"default:true"`
	IsStaff     bool   `gorm:"default:false"`
	IsSuperuser bool   `gorm:"default:false"`
	LastLogin   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (User) TableName() string {
	return "users"
}

// UserFlags carries the permission flags for user creation. The normal
// registration path leaves both false; the elevated path requires both true.
type UserFlags struct {
	IsStaff     bool
	IsSuperuser bool
}
