package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// MetaverseDAO data access layer for metaverse instances.
type MetaverseDAO struct{}

// NewMetaverseDAO creates a new DAO instance.
func NewMetaverseDAO() *MetaverseDAO {
	return &MetaverseDAO{}
}

// Create inserts a new metaverse record.
func (dao *MetaverseDAO) Create(mv *model.Metaverse) error {
	return database.DB.Create(mv).Error
}

// GetByID fetches a metaverse by primary key.
func (dao *MetaverseDAO) GetByID(id string) (*model.Metaverse, error) {
	var mv model.Metaverse
	err := database.DB.Where("id = ?", id).First(&mv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mv, nil
}

// GetByIDForUser fetches a metaverse owned by a specific user.
func (dao *MetaverseDAO) GetByIDForUser(id, userID string) (*model.Metaverse, error) {
	var mv model.Metaverse
	err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&mv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mv, nil
}

// ListByUser returns a user's metaverses, newest first.
func (dao *MetaverseDAO) ListByUser(userID string) ([]*model.Metaverse, error) {
	var mvs []*model.Metaverse
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&mvs).Error
	return mvs, err
}

// SetStatus updates only the status field.
func (dao *MetaverseDAO) SetStatus(id string, status model.MetaverseStatus) error {
	return database.DB.Model(&model.Metaverse{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SetStatusPlayers updates status and players_online together.
func (dao *MetaverseDAO) SetStatusPlayers(id string, status model.MetaverseStatus, players int) error {
	return database.DB.Model(&model.Metaverse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"players_online": players,
		}).Error
}

// AccrueUsage atomically increments the usage counters for one tick.
func (dao *MetaverseDAO) AccrueUsage(id string, minutes, hours int) error {
	updates := map[string]interface{}{
		"uptime_minutes": gorm.Expr("uptime_minutes + ?", minutes),
	}
	if hours > 0 {
		updates["hours_used"] = gorm.Expr("hours_used + ?", hours)
	}
	return database.DB.Model(&model.Metaverse{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// Delete removes a metaverse row.
func (dao *MetaverseDAO) Delete(id string) error {
	return database.DB.Where("id = ?", id).Delete(&model.Metaverse{}).Error
}
