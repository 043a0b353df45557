package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text"`
	DueDate     *time.Time `gorm:"type:date"` // calendar date, no time component
	Completed   bool       `gorm:"not null;default:false"`
	UserID      uuid.UUID  `gorm:"not null;index"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
