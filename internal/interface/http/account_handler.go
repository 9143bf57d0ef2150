package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minseop-dev/userboard/internal/application"
	"github.com/minseop-dev/userboard/internal/domain/apperrors"
	"github.com/minseop-dev/userboard/internal/domain/entity"
	"github.com/minseop-dev/userboard/pkg/response"
	"github.com/minseop-dev/userboard/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type createAccountRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type updateAccountRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// accountResponse is the public projection: no email, address or
// certification code.
type accountResponse struct {
	ID          string `json:"id"`
	Nickname    string `json:"nickname"`
	Status      string `json:"status"`
	LastLoginAt *int64 `json:"last_login_at"`
}

// myProfileResponse is the owner's projection.
type myProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	LastLoginAt *int64 `json:"last_login_at"`
}

func toAccountResponse(a *entity.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		Nickname:    a.Nickname,
		Status:      string(a.Status),
		LastLoginAt: a.LastLoginAt,
	}
}

func toMyProfileResponse(a *entity.Account) myProfileResponse {
	return myProfileResponse{
		ID:          a.ID,
		Email:       a.Email,
		Nickname:    a.Nickname,
		Address:     a.Address,
		Status:      string(a.Status),
		LastLoginAt: a.LastLoginAt,
	}
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), application.AccountCreateInput{
		Email:    req.Email,
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		h.fail(c, err, "failed to create account")
		return
	}
	response.Success(c, http.StatusCreated, toAccountResponse(a), "account created")
}

func (h *AccountHandler) GetByID(c *gin.Context) {
	a, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to fetch account")
		return
	}
	response.Success(c, http.StatusOK, toAccountResponse(a), "account")
}

// MyInfo resolves the caller's ACTIVE account by the EMAIL header, stamps
// the login time and returns the owner projection.
func (h *AccountHandler) MyInfo(c *gin.Context) {
	email := c.GetHeader("EMAIL")
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "EMAIL header is required", nil)
		return
	}
	a, err := h.Svc.GetActiveByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err, "failed to fetch account")
		return
	}
	if err := h.Svc.Login(c.Request.Context(), a.ID); err != nil {
		h.fail(c, err, "failed to record login")
		return
	}
	a, err = h.Svc.GetByID(c.Request.Context(), a.ID)
	if err != nil {
		h.fail(c, err, "failed to fetch account")
		return
	}
	response.Success(c, http.StatusOK, toMyProfileResponse(a), "my profile")
}

// UpdateMyInfo overwrites nickname and address on the caller's ACTIVE
// account, resolved by the EMAIL header.
func (h *AccountHandler) UpdateMyInfo(c *gin.Context) {
	email := c.GetHeader("EMAIL")
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "EMAIL header is required", nil)
		return
	}
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.GetActiveByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err, "failed to fetch account")
		return
	}
	a, err = h.Svc.Update(c.Request.Context(), a.ID, application.AccountUpdateInput{
		Nickname: req.Nickname,
		Address:  req.Address,
	})
	if err != nil {
		h.fail(c, err, "failed to update account")
		return
	}
	response.Success(c, http.StatusOK, toMyProfileResponse(a), "profile updated")
}

// Verify activates the account when the certification code matches.
func (h *AccountHandler) Verify(c *gin.Context) {
	id := c.Param("id")
	code := c.Query("certificationCode")
	if code == "" {
		response.Error[any](c, http.StatusBadRequest, "certificationCode is required", nil)
		return
	}
	if err := h.Svc.VerifyEmail(c.Request.Context(), id, code); err != nil {
		h.fail(c, err, "failed to verify email")
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"verified": true}, "email certified")
}

func (h *AccountHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case apperrors.IsNotFound(err):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case application.IsCertificationMismatch(err):
		response.Error[any](c, http.StatusForbidden, "certification code does not match", nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error(msg)
		}
		response.Error[any](c, http.StatusInternalServerError, msg, nil)
	}
}
