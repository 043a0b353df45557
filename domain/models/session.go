package models

import "time"

// Session is the database-backed session row, used when no redis
// instance is configured. Expired rows are swept by a scheduled job.
type Session struct {
	Key       string `gorm:"primaryKey;size:64"`
	Data      []byte
	ExpiresAt time.Time `gorm:"index"`
}

func (Session) TableName() string {
	return "sessions"
}
