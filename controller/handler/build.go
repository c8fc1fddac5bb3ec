package handler

import (
	"errors"

	"ggplay-backend/controller/respond"
	"ggplay-backend/database"
	"ggplay-backend/service/build_service"

	"github.com/gin-gonic/gin"
)

// BuildHandler build pipeline handler
type BuildHandler struct {
	buildService *build_service.BuildService
}

// NewBuildHandler create build handler instance
func NewBuildHandler(buildService *build_service.BuildService) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

// Create queue a build for a project
// @Summary      Start build
// @Description  Queue a build job; it advances to PROCESSING and DONE on its own
// @Tags         Build
// @Accept       json
// @Produce      json
// @Param        body  body      respond.CreateBuildRequest  true  "Build payload"
// @Success      201   {object}  respond.Response{data=respond.BuildQueuedResponse}
// @Failure      400   {object}  respond.Response
// @Failure      404   {object}  respond.Response
// @Failure      429   {object}  respond.Response
// @Router       /build [post]
func (h *BuildHandler) Create(c *gin.Context) {
	var req respond.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	job, err := h.buildService.CreateBuild(req.ProjectID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respond.NotFound(c, "project not found")
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Created(c, respond.BuildQueuedResponse{JobID: job.ID})
}

// Get poll a build job's status
// @Summary      Get build
// @Description  Return the current stage and logs of a build job
// @Tags         Build
// @Produce      json
// @Param        id   path      string  true  "Build job ID"
// @Success      200  {object}  respond.Response{data=respond.BuildJobResponse}
// @Failure      404  {object}  respond.Response
// @Router       /build/{id} [get]
func (h *BuildHandler) Get(c *gin.Context) {
	job, err := h.buildService.GetBuild(c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respond.NotFound(c, "build job not found")
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToBuildJobResponse(job))
}
