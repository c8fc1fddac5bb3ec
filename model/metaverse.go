package model

import "time"

// MetaverseStatus lifecycle state of a game-server instance
type MetaverseStatus string

const (
	MetaverseStatusStopped  MetaverseStatus = "STOPPED"
	MetaverseStatusStarting MetaverseStatus = "STARTING"
	MetaverseStatusRunning  MetaverseStatus = "RUNNING"
	MetaverseStatusStopping MetaverseStatus = "STOPPING"
	MetaverseStatusError    MetaverseStatus = "ERROR"
)

// MetaverseKind world dimensionality
type MetaverseKind string

const (
	MetaverseKind2D MetaverseKind = "TWO_D"
	MetaverseKind3D MetaverseKind = "THREE_D"
)

// Valid reports whether the kind is supported.
func (k MetaverseKind) Valid() bool {
	return k == MetaverseKind2D || k == MetaverseKind3D
}

// Region hosting region for an instance
type Region string

const (
	RegionAsia Region = "ASIA"
	RegionEU   Region = "EU"
	RegionUS   Region = "US"
)

// Valid reports whether the region is supported.
func (r Region) Valid() bool {
	return r == RegionAsia || r == RegionEU || r == RegionUS
}

// Metaverse user-owned simulated game-server instance
type Metaverse struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	UserID string        `gorm:"index;type:char(36);not null" json:"user_id"`
	Name   string        `gorm:"type:varchar(255);not null" json:"name"`
	Kind   MetaverseKind `gorm:"type:varchar(10);not null" json:"kind"`
	Region Region        `gorm:"type:varchar(10);default:'ASIA'" json:"region"`

	// Status is the invariant-bearing field; every transition is validated
	// against it before any write.
	Status MetaverseStatus `gorm:"type:varchar(20);default:'STOPPED'" json:"status"`

	PlayersOnline int `gorm:"type:int;default:0" json:"players_online"`

	// Usage counters accrued by the tracker while RUNNING
	UptimeMinutes int `gorm:"type:int;default:0" json:"uptime_minutes"`
	HoursUsed     int `gorm:"type:int;default:0" json:"hours_used"`

	Version   string `gorm:"type:varchar(20);default:'v1.0.0'" json:"version"`
	Thumbnail string `gorm:"type:varchar(500)" json:"thumbnail"`

	// Timestamps
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (Metaverse) TableName() string {
	return "tb_metaverse"
}
