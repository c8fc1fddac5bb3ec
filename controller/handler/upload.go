package handler

import (
	"errors"
	"io"

	"ggplay-backend/controller/respond"
	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/service/upload_service"

	"github.com/gin-gonic/gin"
)

// UploadHandler asset upload handler
type UploadHandler struct {
	uploadService *upload_service.UploadService
}

// NewUploadHandler create upload handler instance
func NewUploadHandler(uploadService *upload_service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload store an asset file and record its metadata
// @Summary      Upload asset
// @Description  Accept a character, model or worldMap file and return its public URL
// @Tags         Asset
// @Accept       multipart/form-data
// @Produce      json
// @Param        kind  path      string  true  "Asset kind"  Enums(character, model, worldMap)
// @Param        file  formData  file    true  "Asset file"
// @Success      201   {object}  respond.Response{data=respond.AssetResponse}
// @Failure      400   {object}  respond.Response
// @Failure      429   {object}  respond.Response
// @Failure      500   {object}  respond.Response
// @Router       /upload/{kind} [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := model.AssetKind(c.Param("kind"))
	if !kind.Valid() {
		respond.InvalidParam(c, "unknown asset kind")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.InvalidParam(c, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.ServerError(c, "failed to open file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.ServerError(c, "failed to read file")
		return
	}

	asset, err := h.uploadService.SaveAsset(kind, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, upload_service.ErrInvalidFileType) || errors.Is(err, upload_service.ErrFileTooLarge) {
			respond.InvalidParam(c, err.Error())
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Created(c, respond.ToAssetResponse(asset))
}

// GetAsset get asset metadata by id
// @Summary      Get asset
// @Description  Return metadata for an uploaded asset
// @Tags         Asset
// @Produce      json
// @Param        id   path      string  true  "Asset ID"
// @Success      200  {object}  respond.Response{data=respond.AssetResponse}
// @Failure      404  {object}  respond.Response
// @Router       /assets/{id} [get]
func (h *UploadHandler) GetAsset(c *gin.Context) {
	asset, err := h.uploadService.GetAsset(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respond.NotFound(c, "asset not found")
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToAssetResponse(asset))
}
