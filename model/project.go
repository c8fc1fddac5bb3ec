package model

import "time"

// Project asset bundle a build runs against. Holds at most one asset of
// each kind via the three single foreign-key fields.
type Project struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	Name   string `gorm:"index;type:varchar(255);not null" json:"name"`
	UserID string `gorm:"index;type:char(36)" json:"user_id"` // Optional owner

	// Asset references (one per kind)
	CharacterID string `gorm:"type:char(36)" json:"character_id"`
	ModelID     string `gorm:"type:char(36)" json:"model_id"`
	WorldMapID  string `gorm:"type:char(36)" json:"world_map_id"`

	// Timestamps
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (Project) TableName() string {
	return "tb_project"
}
