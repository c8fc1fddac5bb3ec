package model

import "time"

// BuildStatus build pipeline stage
type BuildStatus string

const (
	BuildStatusQueued     BuildStatus = "QUEUED"
	BuildStatusProcessing BuildStatus = "PROCESSING"
	BuildStatusDone       BuildStatus = "DONE"
	BuildStatusError      BuildStatus = "ERROR" // Consumed by polling clients; the simulator never emits it
)

// BuildJob simulated asset-bundling pipeline run for a project
type BuildJob struct {
	ID string `gorm:"primaryKey;type:char(36)" json:"id"`

	ProjectID string      `gorm:"index;type:char(36);not null" json:"project_id"`
	Status    BuildStatus `gorm:"type:varchar(20);default:'QUEUED'" json:"status"`
	Logs      string      `gorm:"type:text" json:"logs"` // Human-readable progress text

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specify table name
func (BuildJob) TableName() string {
	return "tb_build_job"
}
