package respond

import (
	"time"

	"ggplay-backend/model"
)

// CreateMetaverseRequest request structure for instance creation
type CreateMetaverseRequest struct {
	Name   string `json:"name" binding:"required" example:"Ocean Explorers"`
	Kind   string `json:"kind" binding:"required,oneof=TWO_D THREE_D" example:"THREE_D"`
	Region string `json:"region" binding:"omitempty,oneof=ASIA EU US" example:"ASIA"`
}

// MetaverseResponse instance information response structure
type MetaverseResponse struct {
	ID            string    `json:"id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Name          string    `json:"name" example:"Ocean Explorers"`
	Kind          string    `json:"kind" example:"THREE_D"`
	Region        string    `json:"region" example:"ASIA"`
	Status        string    `json:"status" example:"RUNNING"`
	PlayersOnline int       `json:"players_online" example:"12"`
	UptimeMinutes int       `json:"uptime_minutes" example:"340"`
	HoursUsed     int       `json:"hours_used" example:"5"`
	Version       string    `json:"version" example:"v1.0.0"`
	Thumbnail     string    `json:"thumbnail,omitempty" example:"https://cdn.gg.play/thumbs/ocean.png"`
	CreatedAt     time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt     time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
}

// MetaverseListResponse instance list response structure
type MetaverseListResponse struct {
	Metaverses []MetaverseResponse `json:"metaverses"`
	Total      int                 `json:"total" example:"3"`
}

// ToMetaverseResponse convert model to response
func ToMetaverseResponse(mv *model.Metaverse) MetaverseResponse {
	if mv == nil {
		return MetaverseResponse{}
	}
	return MetaverseResponse{
		ID:            mv.ID,
		Name:          mv.Name,
		Kind:          string(mv.Kind),
		Region:        string(mv.Region),
		Status:        string(mv.Status),
		PlayersOnline: mv.PlayersOnline,
		UptimeMinutes: mv.UptimeMinutes,
		HoursUsed:     mv.HoursUsed,
		Version:       mv.Version,
		Thumbnail:     mv.Thumbnail,
		CreatedAt:     mv.CreatedAt,
		UpdatedAt:     mv.UpdatedAt,
	}
}

// ToMetaverseListResponse convert instance list to response
func ToMetaverseListResponse(mvs []*model.Metaverse) MetaverseListResponse {
	responses := make([]MetaverseResponse, 0, len(mvs))
	for _, mv := range mvs {
		responses = append(responses, ToMetaverseResponse(mv))
	}
	return MetaverseListResponse{
		Metaverses: responses,
		Total:      len(responses),
	}
}
