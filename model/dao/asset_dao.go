package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// AssetDAO data access layer for uploaded assets.
type AssetDAO struct{}

// NewAssetDAO creates a new DAO instance.
func NewAssetDAO() *AssetDAO {
	return &AssetDAO{}
}

// Create inserts a new asset record.
func (dao *AssetDAO) Create(asset *model.Asset) error {
	return database.DB.Create(asset).Error
}

// GetByID fetches an asset by primary key.
func (dao *AssetDAO) GetByID(id string) (*model.Asset, error) {
	var asset model.Asset
	err := database.DB.Where("id = ?", id).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}
