package respond

import (
	"time"

	"ggplay-backend/model"
)

// AssetResponse uploaded asset information response structure
type AssetResponse struct {
	ID           string    `json:"id" example:"4f2c1de0-9b38-4f4c-8a6d-2f51cf6b6a01"`
	Kind         string    `json:"kind" example:"character"`
	OriginalName string    `json:"original_name" example:"hero.glb"`
	Filename     string    `json:"filename" example:"9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c.glb"`
	Mime         string    `json:"mime" example:"model/gltf-binary"`
	Size         int64     `json:"size" example:"102400"`
	Url          string    `json:"url" example:"/uploads/9a7b3c10-1f2e-4d5a-b6c7-8d9e0f1a2b3c.glb"`
	CreatedAt    time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
}

// ToAssetResponse convert model to response
func ToAssetResponse(asset *model.Asset) AssetResponse {
	if asset == nil {
		return AssetResponse{}
	}
	return AssetResponse{
		ID:           asset.ID,
		Kind:         string(asset.Kind),
		OriginalName: asset.OriginalName,
		Filename:     asset.Filename,
		Mime:         asset.Mime,
		Size:         asset.Size,
		Url:          asset.Url,
		CreatedAt:    asset.CreatedAt,
	}
}
