package model

import "time"

// User creator account model
type User struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	Email    string `gorm:"uniqueIndex;type:varchar(255);not null" json:"email"` // Login email
	Password string `gorm:"type:varchar(100);not null" json:"-"`                 // bcrypt hash, never serialized

	// Timestamps
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (User) TableName() string {
	return "tb_user"
}
