package repository

import (
	"errors"
	"task_management_ms/domain"

	"gorm.io/gorm"
)

type ISessionRepository interface {
	Insert(db *gorm.DB, session *domain.SessionToken) error
	FindByID(db *gorm.DB, id string) (*domain.SessionToken, error)
	Delete(db *gorm.DB, id string) error
}

type SessionRepository struct {
}

func NewSessionRepository() ISessionRepository {
	return &SessionRepository{}
}

func (s *SessionRepository) Insert(db *gorm.DB, session *domain.SessionToken) error {
	return db.Create(session).Error
}

func (s *SessionRepository) FindByID(db *gorm.DB, id string) (*domain.SessionToken, error) {
	var session domain.SessionToken
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *SessionRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&domain.SessionToken{}, "id = ?", id).Error
}
