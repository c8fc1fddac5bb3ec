package model

import "time"

// AssetKind uploaded asset category
type AssetKind string

const (
	AssetKindCharacter AssetKind = "character" // Character rig (.glb)
	AssetKindModel     AssetKind = "model"     // Environment model (.glb/.gltf)
	AssetKindWorldMap  AssetKind = "worldMap"  // World map image
)

// Valid reports whether the kind is one of the three supported categories.
func (k AssetKind) Valid() bool {
	switch k {
	case AssetKindCharacter, AssetKindModel, AssetKindWorldMap:
		return true
	}
	return false
}

// Asset uploaded game asset metadata. Rows are immutable once created.
type Asset struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	Kind         AssetKind `gorm:"type:varchar(20);not null" json:"kind"`
	OriginalName string    `gorm:"type:varchar(255)" json:"original_name"` // Client-side file name
	Filename     string    `gorm:"type:varchar(255);not null" json:"filename"` // Stored object key
	Mime         string    `gorm:"type:varchar(100)" json:"mime"`
	Size         int64     `json:"size"`
	Url          string    `gorm:"type:varchar(500)" json:"url"` // Public download URL

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specify table name
func (Asset) TableName() string {
	return "tb_asset"
}
