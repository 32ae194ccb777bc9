package repository

import (
	"errors"
	"task_management_ms/domain"

	"gorm.io/gorm"
)

type IUserRepository interface {
	GetByName(db *gorm.DB, name string) (*domain.User, error)
	GetOrCreateByName(db *gorm.DB, name string) (*domain.User, error)
	GetByNameWithPasskeys(db *gorm.DB, name string) (*domain.User, error)
}

type UserRepository struct {
}

func NewUserRepository() IUserRepository {
	return &UserRepository{}
}

func (u *UserRepository) GetByName(db *gorm.DB, name string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateByName inserts the user row on a first registration attempt and
// returns the existing row on every later one.
func (u *UserRepository) GetOrCreateByName(db *gorm.DB, name string) (*domain.User, error) {
	var user domain.User
	err := db.Where(domain.User{Name: name}).FirstOrCreate(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Racing first registrations for the same name: the winner's row wins.
		err = db.Where("name = ?", name).First(&user).Error
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserRepository) GetByNameWithPasskeys(db *gorm.DB, name string) (*domain.User, error) {
	var user domain.User
	if err := db.Preload("Passkeys").Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
