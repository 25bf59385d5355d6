package handler

import (
	"net/http"

	"hiredesk/internal/middleware"
	"hiredesk/internal/model"
	"hiredesk/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes account provisioning and teardown operations.
type AccountHandler struct {
	accounts service.AccountService
	teardown service.TeardownService
}

func NewAccountHandler(accounts service.AccountService, teardown service.TeardownService) *AccountHandler {
	return &AccountHandler{accounts: accounts, teardown: teardown}
}

// CreateAdmin provisions an admin account
// @Router /api/functions/createAdmin [post]
func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := h.accounts.CreateAdmin(c.Request.Context(), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Admin created", created))
}

// CreateCandidate provisions a candidate account
// @Router /api/functions/createCandidate [post]
func (h *AccountHandler) CreateCandidate(c *gin.Context) {
	var req model.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	created, err := h.accounts.CreateCandidate(c.Request.Context(), middleware.CallerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Candidate created", created))
}

// DeleteUser tears down a generic (admin) account
// @Router /api/functions/deleteUser [post]
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	var req model.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.teardown.DeleteUser(c.Request.Context(), middleware.CallerID(c), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User deleted", nil))
}

// DeleteCandidate tears down a candidate account and its dependent records
// @Router /api/functions/deleteCandidate [post]
func (h *AccountHandler) DeleteCandidate(c *gin.Context) {
	var req model.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.teardown.DeleteCandidate(c.Request.Context(), middleware.CallerID(c), &req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Candidate deleted", nil))
}
