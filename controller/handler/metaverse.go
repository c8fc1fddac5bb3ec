package handler

import (
	"errors"
	"net/http"

	"ggplay-backend/controller/respond"
	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/service/metaverse_service"

	"github.com/gin-gonic/gin"
)

// MetaverseHandler instance lifecycle handler
type MetaverseHandler struct {
	lifecycle *metaverse_service.LifecycleService
}

// NewMetaverseHandler create metaverse handler instance
func NewMetaverseHandler(lifecycle *metaverse_service.LifecycleService) *MetaverseHandler {
	return &MetaverseHandler{lifecycle: lifecycle}
}

// Create provision a new stopped instance
// @Summary      Create metaverse
// @Description  Provision a new instance in the STOPPED state
// @Tags         Metaverse
// @Accept       json
// @Produce      json
// @Param        body  body      respond.CreateMetaverseRequest  true  "Instance payload"
// @Success      201   {object}  respond.Response{data=respond.MetaverseResponse}
// @Failure      400   {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses [post]
func (h *MetaverseHandler) Create(c *gin.Context) {
	var req respond.CreateMetaverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	mv, err := h.lifecycle.Create(CurrentUserID(c), req.Name, model.MetaverseKind(req.Kind), model.Region(req.Region))
	if err != nil {
		respond.ServerError(c, err.Error())
		return
	}

	respond.Created(c, respond.ToMetaverseResponse(mv))
}

// List list the caller's instances
// @Summary      List metaverses
// @Description  Return the caller's instances, newest first
// @Tags         Metaverse
// @Produce      json
// @Success      200  {object}  respond.Response{data=respond.MetaverseListResponse}
// @Security     BearerAuth
// @Router       /metaverses [get]
func (h *MetaverseHandler) List(c *gin.Context) {
	mvs, err := h.lifecycle.List(CurrentUserID(c))
	if err != nil {
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToMetaverseListResponse(mvs))
}

// Get get one instance by id
// @Summary      Get metaverse
// @Description  Return a single instance owned by the caller
// @Tags         Metaverse
// @Produce      json
// @Param        id   path      string  true  "Metaverse ID"
// @Success      200  {object}  respond.Response{data=respond.MetaverseResponse}
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses/{id} [get]
func (h *MetaverseHandler) Get(c *gin.Context) {
	mv, err := h.lifecycle.Get(c.Param("id"), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToMetaverseResponse(mv))
}

// Start begin the boot sequence
// @Summary      Start metaverse
// @Description  Move a STOPPED or ERROR instance into STARTING; boot resolves asynchronously
// @Tags         Metaverse
// @Produce      json
// @Param        id   path      string  true  "Metaverse ID"
// @Success      200  {object}  respond.Response{data=respond.MetaverseResponse}
// @Failure      400  {object}  respond.Response
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses/start/{id} [post]
func (h *MetaverseHandler) Start(c *gin.Context) {
	mv, err := h.lifecycle.Start(c.Param("id"), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToMetaverseResponse(mv))
}

// Stop begin the shutdown sequence
// @Summary      Stop metaverse
// @Description  Move a RUNNING or ERROR instance into STOPPING; shutdown resolves asynchronously
// @Tags         Metaverse
// @Produce      json
// @Param        id   path      string  true  "Metaverse ID"
// @Success      200  {object}  respond.Response{data=respond.MetaverseResponse}
// @Failure      400  {object}  respond.Response
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses/stop/{id} [post]
func (h *MetaverseHandler) Stop(c *gin.Context) {
	mv, err := h.lifecycle.Stop(c.Param("id"), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToMetaverseResponse(mv))
}

// Restart cycle a running instance
// @Summary      Restart metaverse
// @Description  Cycle a RUNNING instance through STOPPING and STARTING back to RUNNING
// @Tags         Metaverse
// @Produce      json
// @Param        id   path      string  true  "Metaverse ID"
// @Success      200  {object}  respond.Response{data=respond.MetaverseResponse}
// @Failure      400  {object}  respond.Response
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses/restart/{id} [post]
func (h *MetaverseHandler) Restart(c *gin.Context) {
	mv, err := h.lifecycle.Restart(c.Param("id"), CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToMetaverseResponse(mv))
}

// Delete remove an instance in any state
// @Summary      Delete metaverse
// @Description  Stop usage tracking and remove the instance
// @Tags         Metaverse
// @Produce      json
// @Param        id   path      string  true  "Metaverse ID"
// @Success      204  "No Content"
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /metaverses/delete/{id} [delete]
func (h *MetaverseHandler) Delete(c *gin.Context) {
	if err := h.lifecycle.Delete(c.Param("id"), CurrentUserID(c)); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// fail maps service errors onto HTTP responses.
func (h *MetaverseHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respond.NotFound(c, "metaverse not found")
	case errors.Is(err, metaverse_service.ErrInvalidTransition):
		respond.InvalidParam(c, err.Error())
	default:
		respond.ServerError(c, err.Error())
	}
}
