package respond

import (
	"time"

	"ggplay-backend/model"
)

// UpsertProjectRequest request structure for saving the active asset set
type UpsertProjectRequest struct {
	CharacterID string `json:"character_id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	ModelID     string `json:"model_id" example:"9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c"`
	WorldMapID  string `json:"world_map_id" example:"1b2c3d40-5e6f-4a7b-8c9d-0e1f2a3b4c5d"`
}

// ProjectResponse project information response structure
type ProjectResponse struct {
	ID          string    `json:"id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Name        string    `json:"name" example:"gg.play default"`
	CharacterID string    `json:"character_id,omitempty" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	ModelID     string    `json:"model_id,omitempty" example:"9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c"`
	WorldMapID  string    `json:"world_map_id,omitempty" example:"1b2c3d40-5e6f-4a7b-8c9d-0e1f2a3b4c5d"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

// ToProjectResponse convert model to response
func ToProjectResponse(project *model.Project) ProjectResponse {
	if project == nil {
		return ProjectResponse{}
	}
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		CharacterID: project.CharacterID,
		ModelID:     project.ModelID,
		WorldMapID:  project.WorldMapID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
