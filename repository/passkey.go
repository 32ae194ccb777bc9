package repository

import (
	"errors"
	"task_management_ms/domain"
	"time"

	"gorm.io/gorm"
)

type IPasskeyRepository interface {
	Insert(db *gorm.DB, passkey *domain.Passkey) error
	FindByUsername(db *gorm.DB, username string) ([]domain.Passkey, error)
	FindByCredentialID(db *gorm.DB, credentialID []byte) (*domain.Passkey, error)
	UpdateCredential(db *gorm.DB, credentialID []byte, data []byte, signCount uint32) error
}

type PasskeyRepository struct {
}

func NewPasskeyRepository() IPasskeyRepository {
	return &PasskeyRepository{}
}

func (p *PasskeyRepository) Insert(db *gorm.DB, passkey *domain.Passkey) error {
	if err := db.Create(passkey).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCredentialExists
		}
		return err
	}
	return nil
}

// FindByUsername returns an empty slice for a user without credentials; an
// unknown username looks exactly the same to the caller.
func (p *PasskeyRepository) FindByUsername(db *gorm.DB, username string) ([]domain.Passkey, error) {
	passkeys := []domain.Passkey{}
	if err := db.Where("username = ?", username).Find(&passkeys).Error; err != nil {
		return nil, err
	}
	return passkeys, nil
}

func (p *PasskeyRepository) FindByCredentialID(db *gorm.DB, credentialID []byte) (*domain.Passkey, error) {
	var passkey domain.Passkey
	if err := db.Where("credential_id = ?", credentialID).First(&passkey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, err
	}
	return &passkey, nil
}

// UpdateCredential overwrites the stored blob; callers only invoke it when the
// reported signature counter increased.
func (p *PasskeyRepository) UpdateCredential(db *gorm.DB, credentialID []byte, data []byte, signCount uint32) error {
	now := time.Now()
	return db.Model(&domain.Passkey{}).
		Where("credential_id = ?", credentialID).
		Updates(map[string]interface{}{
			"data":       data,
			"sign_count": signCount,
			"updated_at": now,
		}).Error
}
