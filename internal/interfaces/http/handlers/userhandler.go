package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/warden-inc/warden/internal/application/auth/usecases"
	"github.com/warden-inc/warden/internal/domain/account"
	"github.com/warden-inc/warden/internal/shared/errors"
	"github.com/warden-inc/warden/internal/shared/logger"
	"github.com/warden-inc/warden/internal/shared/utils"
)

// UserHandler serves the admin account management routes.
type UserHandler struct {
	service AuthService
	logger  logger.Interface
}

func NewUserHandler(service AuthService, logger logger.Interface) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// UpdateUserRequest changes any subset of an account's fields.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin user"`
}

// ListUsers returns every account.
// @Summary List accounts
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse{data=[]account.Identity}
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context, admin *account.Identity) {
	identities, err := h.service.ListAccounts(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", identities)
}

// GetUser returns any account by id.
// @Summary Get account
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse{data=account.Identity}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context, admin *account.Identity) {
	accountID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	identity, err := h.service.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Debugw("account fetched by admin", "admin_id", admin.ID, "account_id", accountID)
	utils.SuccessResponse(c, http.StatusOK, "", identity)
}

// GetUserByEmail looks an account up by its normalized email.
// @Summary Get account by email
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param email path string true "Email address"
// @Success 200 {object} utils.APIResponse{data=account.Identity}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context, admin *account.Identity) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("email is required"))
		return
	}

	identity, err := h.service.GetAccountByEmail(c.Request.Context(), email)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", identity)
}

// UpdateUser changes an account. A new role or password ends the account's session.
// @Summary Update account
// @Tags Admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=account.Identity}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context, admin *account.Identity) {
	accountID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.service.UpdateAccount(c.Request.Context(), usecases.UpdateAccountCommand{
		AccountID: accountID,
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("account updated by admin", "admin_id", admin.ID, "account_id", accountID)
	utils.SuccessResponse(c, http.StatusOK, "account updated", identity)
}

// DeleteUser removes an account and ends its session.
// @Summary Delete account
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context, admin *account.Identity) {
	accountID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), accountID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("account deleted by admin", "admin_id", admin.ID, "account_id", accountID)
	utils.SuccessResponse(c, http.StatusOK, "account deleted", nil)
}
