package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// BuildJobDAO data access layer for build jobs.
type BuildJobDAO struct{}

// NewBuildJobDAO creates a new DAO instance.
func NewBuildJobDAO() *BuildJobDAO {
	return &BuildJobDAO{}
}

// Create inserts a new build job record.
func (dao *BuildJobDAO) Create(job *model.BuildJob) error {
	return database.DB.Create(job).Error
}

// GetByID fetches a build job by primary key.
func (dao *BuildJobDAO) GetByID(id string) (*model.BuildJob, error) {
	var job model.BuildJob
	err := database.DB.Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SetStatus updates the status and log text of a job.
func (dao *BuildJobDAO) SetStatus(id string, status model.BuildStatus, logs string) error {
	return database.DB.Model(&model.BuildJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"logs":   logs,
		}).Error
}
