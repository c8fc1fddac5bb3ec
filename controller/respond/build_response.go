package respond

import (
	"time"

	"ggplay-backend/model"
)

// CreateBuildRequest request structure for starting a build
type CreateBuildRequest struct {
	ProjectID string `json:"project_id" binding:"required" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
}

// BuildQueuedResponse response structure for a freshly queued build
type BuildQueuedResponse struct {
	JobID string `json:"job_id" example:"9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c"`
}

// BuildJobResponse build job information response structure
type BuildJobResponse struct {
	ID        string    `json:"id" example:"9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c"`
	ProjectID string    `json:"project_id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Status    string    `json:"status" example:"PROCESSING"`
	Logs      string    `json:"logs" example:"Processing assets…"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

// ToBuildJobResponse convert model to response
func ToBuildJobResponse(job *model.BuildJob) BuildJobResponse {
	if job == nil {
		return BuildJobResponse{}
	}
	return BuildJobResponse{
		ID:        job.ID,
		ProjectID: job.ProjectID,
		Status:    string(job.Status),
		Logs:      job.Logs,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}
