package handler

import (
	"errors"

	"ggplay-backend/controller/respond"
	"ggplay-backend/database"
	"ggplay-backend/service/auth_service"

	"github.com/gin-gonic/gin"
)

// AuthHandler account and session handler
type AuthHandler struct {
	authService *auth_service.AuthService
}

// NewAuthHandler create auth handler instance
func NewAuthHandler(authService *auth_service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup register a new creator account
// @Summary      Sign up
// @Description  Create an account with an INDIE subscription and return a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      respond.SignupRequest  true  "Signup payload"
// @Success      201   {object}  respond.Response{data=respond.AuthResponse}
// @Failure      400   {object}  respond.Response
// @Failure      409   {object}  respond.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req respond.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	user, token, err := h.authService.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth_service.ErrEmailTaken) {
			respond.Conflict(c, err.Error())
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Created(c, respond.ToAuthResponse(user, token))
}

// Login authenticate and issue a session token
// @Summary      Log in
// @Description  Verify credentials and return a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      respond.LoginRequest  true  "Login payload"
// @Success      200   {object}  respond.Response{data=respond.AuthResponse}
// @Failure      400   {object}  respond.Response
// @Failure      401   {object}  respond.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req respond.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, err.Error())
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth_service.ErrInvalidCredentials) {
			respond.Unauthorized(c, "", err.Error())
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToAuthResponse(user, token))
}

// Me return the authenticated user's profile
// @Summary      Current user
// @Description  Return the profile of the token's owner
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  respond.Response{data=respond.UserResponse}
// @Failure      401  {object}  respond.Response
// @Failure      404  {object}  respond.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(CurrentUserID(c))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respond.NotFound(c, "user not found")
			return
		}
		respond.ServerError(c, err.Error())
		return
	}

	respond.Success(c, respond.ToUserResponse(user))
}
