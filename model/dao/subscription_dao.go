package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// SubscriptionDAO data access layer for subscriptions.
type SubscriptionDAO struct{}

// NewSubscriptionDAO creates a new DAO instance.
func NewSubscriptionDAO() *SubscriptionDAO {
	return &SubscriptionDAO{}
}

// GetByUserID fetches the subscription owned by a user (1:1).
func (dao *SubscriptionDAO) GetByUserID(userID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := database.DB.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Update persists subscription changes.
func (dao *SubscriptionDAO) Update(sub *model.Subscription) error {
	return database.DB.Model(&model.Subscription{}).
		Where("id = ?", sub.ID).
		Select("*").
		Updates(sub).Error
}
