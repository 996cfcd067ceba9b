package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/config"
	"github.com/warden-inc/warden/internal/shared/logger"
	"github.com/warden-inc/warden/internal/shared/utils"
)

type AuthHandler struct {
	service      AuthService
	cookieConfig config.CookieConfig
	jwtConfig    config.JWTConfig
	logger       logger.Interface
}

func NewAuthHandler(service AuthService, cookieConfig config.CookieConfig, jwtConfig config.JWTConfig, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieConfig: cookieConfig,
		jwtConfig:    jwtConfig,
		logger:       logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User         account.Identity `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// Register creates an account with the user role.
// @Summary Register account
// @Description Create an account. The password must be 8 characters and at most 72 bytes.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} utils.APIResponse{data=account.Identity}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users/create [post]
func (h *AuthHandler) Register(c *gin.Context, _ *account.Identity) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.service.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, identity, "account created")
}

// Login issues an access token and sets the refresh token cookie.
// @Summary Login
// @Description Authenticate with email and password
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context, _ *account.Identity) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetRefreshCookie(c, h.cookieConfig, result.RefreshToken, h.jwtConfig.RefreshTTL)
	utils.SuccessResponse(c, http.StatusOK, "logged in successfully", LoginResponse{
		User:         result.Identity,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// RefreshToken exchanges the refresh token cookie for a new access token.
// @Summary Refresh access token
// @Description Read the refresh_token cookie and return a new access token
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse{data=RefreshResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/refresh/token [get]
func (h *AuthHandler) RefreshToken(c *gin.Context, _ *account.Identity) {
	token := utils.GetTokenFromCookie(c, utils.RefreshTokenCookie)
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "refresh token not found in the cookie")
		return
	}

	result, err := h.service.RefreshAccessToken(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", RefreshResponse{AccessToken: result.AccessToken})
}

// @Summary Current account
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=account.Identity}
// @Failure 401 {object} utils.APIResponse
// @Router /users/me [get]
func (h *AuthHandler) Me(c *gin.Context, identity *account.Identity) {
	utils.SuccessResponse(c, http.StatusOK, "", identity)
}

// Logout invalidates the session and clears the refresh cookie.
// @Summary Logout
// @Tags Users
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context, identity *account.Identity) {
	if err := h.service.Logout(c.Request.Context(), identity.ID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearRefreshCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out successfully", nil)
}
