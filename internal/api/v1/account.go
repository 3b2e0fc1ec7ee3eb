package v1

import (
	"net/http"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/logger"
	"github.com/openshop/storefront/internal/service"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService service.AccountService
	log            *logger.Logger
}

func NewAccountHandler(accountService service.AccountService, log *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		log:            log,
	}
}

// @Summary Get account
// @Description Returns the signed in shopper's profile
// @Tags Account
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	resp, err := h.accountService.GetAccount(c.Request.Context(), credentialsFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Verify account
// @Description Re-checks the shopper's email and password before a sensitive change
// @Tags Account
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.VerifyAccountRequest true "Credentials to verify"
// @Success 200 {object} dto.DialogResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Router /account/verify [post]
func (h *AccountHandler) Verify(c *gin.Context) {
	var req dto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.accountService.Verify(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Change email
// @Description Changes the shopper's email; only allowed from the change email dialog
// @Tags Account
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.ChangeEmailRequest true "New email"
// @Success 200 {object} dto.DialogResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /account/email [post]
func (h *AccountHandler) ChangeEmail(c *gin.Context) {
	var req dto.ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.accountService.ChangeEmail(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Change password
// @Description Changes the shopper's password; only allowed from the change password dialog
// @Tags Account
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.ChangePasswordRequest true "New password"
// @Success 200 {object} dto.DialogResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /account/password [post]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.accountService.ChangePassword(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Send password reset
// @Description Asks the storefront to email a password reset link
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.ForgetPasswordRequest true "Account email"
// @Success 200 {object} dto.DialogResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /account/forget-password [post]
func (h *AccountHandler) SendPasswordReset(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.accountService.SendPasswordReset(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update account details
// @Description Updates profile fields; the age is recomputed when a birthday is given
// @Tags Account
// @Accept json
// @Produce json
// @Param accessToken header string true "Shopper access token"
// @Param request body dto.UpdateAccountDetailsRequest true "Profile fields"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /account/details [post]
func (h *AccountHandler) UpdateDetails(c *gin.Context) {
	var req dto.UpdateAccountDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(invalidRequest(err))
		return
	}

	resp, err := h.accountService.UpdateDetails(c.Request.Context(), credentialsFrom(c), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
