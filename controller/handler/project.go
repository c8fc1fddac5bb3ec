package handler

import (
	"ggplay-backend/controller/respond"
	"ggplay-backend/service/project_service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler asset-set project handler
type ProjectHandler struct {
	projectService *project_service.ProjectService
}

// NewProjectHandler create project handler instance
func NewProjectHandler(projectService *project_service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Upsert save the active asset set under the default project
// @Summary      Save project
// @Description  Create or update the default project's asset references
// @Tags         Project
// @Accept       json
// @Produce      json
// @Param        body  body      respond.UpsertProjectRequest  true  "Asset references"
// @Success      200   {object}  respond.Response{data=respond.ProjectResponse}
// @Failure      400   {object}  respond.Response
// @Router       /project [post]
func (h *ProjectHandler) Upsert(c *gin.Context) {
	var req respond.UpsertProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	project, err := h.projectService.Upsert(req.CharacterID, req.ModelID, req.WorldMapID)
	if err != nil {
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToProjectResponse(project))
}
