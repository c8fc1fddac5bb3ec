package dao

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"gorm.io/gorm"
)

// ProjectDAO data access layer for projects.
type ProjectDAO struct{}

// NewProjectDAO creates a new DAO instance.
func NewProjectDAO() *ProjectDAO {
	return &ProjectDAO{}
}

// Create inserts a new project record.
func (dao *ProjectDAO) Create(project *model.Project) error {
	return database.DB.Create(project).Error
}

// GetByID fetches a project by primary key.
func (dao *ProjectDAO) GetByID(id string) (*model.Project, error) {
	var project model.Project
	err := database.DB.Where("id = ?", id).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName fetches the first project with the given name.
func (dao *ProjectDAO) GetByName(name string) (*model.Project, error) {
	var project model.Project
	err := database.DB.Where("name = ?", name).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update persists project changes.
func (dao *ProjectDAO) Update(project *model.Project) error {
	return database.DB.Model(&model.Project{}).
		Where("id = ?", project.ID).
		Select("*").
		Updates(project).Error
}
