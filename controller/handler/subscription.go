package handler

import (
	"errors"

	"ggplay-backend/controller/respond"
	"ggplay-backend/database"
	"ggplay-backend/model"
	"ggplay-backend/service/subscription_service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler billing and allowance handler
type SubscriptionHandler struct {
	subscriptionService *subscription_service.SubscriptionService
}

// NewSubscriptionHandler create subscription handler instance
func NewSubscriptionHandler(subscriptionService *subscription_service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Get return the caller's subscription
// @Summary      Get subscription
// @Description  Return the caller's plan, allowance and usage
// @Tags         Subscription
// @Produce      json
// @Success      200  {object}  respond.Response{data=respond.SubscriptionResponse}
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /subscription [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.subscriptionService.Get(CurrentUserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToSubscriptionResponse(sub))
}

// BuyHours top up capacity by reducing used hours
// @Summary      Buy hours
// @Description  Credit 1 to 500 extra hours against the current cycle's usage
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        body  body      respond.BuyHoursRequest  true  "Top-up payload"
// @Success      200   {object}  respond.Response{data=respond.SubscriptionResponse}
// @Failure      400   {object}  respond.Response
// @Failure      404   {object}  respond.Response
// @Security     BearerAuth
// @Router       /subscription/buy-hours [post]
func (h *SubscriptionHandler) BuyHours(c *gin.Context) {
	var req respond.BuyHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	sub, err := h.subscriptionService.BuyHours(CurrentUserID(c), req.Hours)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToSubscriptionResponse(sub))
}

// Upgrade change the plan tier
// @Summary      Upgrade plan
// @Description  Switch plan; the monthly allowance defaults to the target plan's unless overridden
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        body  body      respond.UpgradeRequest  true  "Upgrade payload"
// @Success      200   {object}  respond.Response{data=respond.SubscriptionResponse}
// @Failure      400   {object}  respond.Response
// @Failure      404   {object}  respond.Response
// @Security     BearerAuth
// @Router       /subscription/upgrade [post]
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	var req respond.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	sub, err := h.subscriptionService.Upgrade(CurrentUserID(c), model.Plan(req.Plan), req.MonthlyHours)
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.Success(c, respond.ToSubscriptionResponse(sub))
}

func (h *SubscriptionHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, database.ErrNotFound) {
		respond.NotFound(c, "subscription not found")
		return
	}
	respond.ServerError(c, err.Error())
}
