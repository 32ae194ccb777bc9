package services

import (
	"errors"
	"task_management_ms/domain"
	"task_management_ms/repository"
	"time"

	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
)

type ISessionService interface {
	Issue(username string) (string, error)
	Verify(sessionID string) (*domain.User, error)
	Revoke(sessionID string) error
}

// SessionService mints opaque session ids backed by rows in session_tokens and
// resolves them back to their owning user. A zero ttl means a session lives
// until its row is deleted.
type SessionService struct {
	db          *gorm.DB
	sessionRepo repository.ISessionRepository
	userRepo    repository.IUserRepository
	ttl         time.Duration
}

func NewSessionService(db *gorm.DB, sessionRepo repository.ISessionRepository, userRepo repository.IUserRepository, ttl time.Duration) ISessionService {
	return &SessionService{db: db, sessionRepo: sessionRepo, userRepo: userRepo, ttl: ttl}
}

func (s *SessionService) Issue(username string) (string, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}

	session := &domain.SessionToken{Id: id, Username: username}
	if s.ttl > 0 {
		expires := time.Now().Add(s.ttl)
		session.ExpiresAt = &expires
	}

	if err := s.sessionRepo.Insert(s.db, session); err != nil {
		return "", err
	}
	return id, nil
}

func (s *SessionService) Verify(sessionID string) (*domain.User, error) {
	session, err := s.sessionRepo.FindByID(s.db, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		// Best effort reap; the session is gone either way.
		_ = s.sessionRepo.Delete(s.db, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.userRepo.GetByName(s.db, session.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *SessionService) Revoke(sessionID string) error {
	return s.sessionRepo.Delete(s.db, sessionID)
}
