package project_service

import (
	"errors"

	"ggplay-backend/database"
	"ggplay-backend/model"

	"github.com/google/uuid"
)

// DefaultProjectName the builder surface works against a single named
// project per deployment.
const DefaultProjectName = "gg.play default"

// Store persists projects.
type Store interface {
	Create(project *model.Project) error
	GetByName(name string) (*model.Project, error)
	Update(project *model.Project) error
}

// ProjectService upsert-style project management for the builder.
type ProjectService struct {
	store Store
}

// NewProjectService creates a project service.
func NewProjectService(store Store) *ProjectService {
	return &ProjectService{store: store}
}

// Upsert creates or updates the default project with the given asset
// references. Empty ids clear the corresponding slot.
func (s *ProjectService) Upsert(characterID, modelID, worldMapID string) (*model.Project, error) {
	existing, err := s.store.GetByName(DefaultProjectName)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.CharacterID = characterID
		existing.ModelID = modelID
		existing.WorldMapID = worldMapID
		if err := s.store.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        DefaultProjectName,
		CharacterID: characterID,
		ModelID:     modelID,
		WorldMapID:  worldMapID,
	}
	if err := s.store.Create(project); err != nil {
		return nil, err
	}
	return project, nil
}
