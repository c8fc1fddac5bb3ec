package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// UserDAO data access layer for creator accounts.
type UserDAO struct{}

// NewUserDAO creates a new DAO instance.
func NewUserDAO() *UserDAO {
	return &UserDAO{}
}

// CreateWithSubscription inserts a user and their initial subscription in one transaction.
func (dao *UserDAO) CreateWithSubscription(user *model.User, sub *model.Subscription) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		sub.UserID = user.ID
		return tx.Create(sub).Error
	})
}

// GetByEmail fetches a user by email.
func (dao *UserDAO) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := database.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID fetches a user by primary key.
func (dao *UserDAO) GetByID(id string) (*model.User, error) {
	var user model.User
	err := database.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
