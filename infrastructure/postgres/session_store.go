package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard/domain/models"
)

// SessionStore keeps sessions in the database when no redis instance is
// configured. Rows do not expire on their own; Cleanup is run on a
// schedule to sweep them.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Get(key string) ([]byte, error) {
	var sess models.Session
	err := s.db.Where("key = ?", key).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return sess.Data, nil
}

func (s *SessionStore) Set(key string, val []byte, exp time.Duration) error {
	sess := models.Session{Key: key, Data: val}
	if exp > 0 {
		sess.ExpiresAt = time.Now().Add(exp)
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at"}),
	}).Create(&sess).Error
}

func (s *SessionStore) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.Session{}).Error
}

func (s *SessionStore) Reset() error {
	return s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Session{}).Error
}

func (s *SessionStore) Close() error {
	return nil
}

// Cleanup removes expired rows. Returns the number swept.
func (s *SessionStore) Cleanup() (int64, error) {
	result := s.db.Where("expires_at > '0001-01-01' AND expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
