package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/user/model"
	"library-api/internal/domains/user/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
)

// Handler - account HTTP endpoints
type Handler struct {
	service service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// Register - POST /v1/users/register
func (h *Handler) Register(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to register")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusCreated, res.Data())
}

// Login - POST /v1/users/login
func (h *Handler) Login(c *gin.Context) {
	var req model.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to login")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// RefreshToken - GET /v1/users/refresh-token (authenticated)
func (h *Handler) RefreshToken(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	res, err := h.service.RefreshToken(c.Request.Context(), email)
	if err != nil {
		response.InternalServerError(c, "failed to refresh token")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// MakeAdmin - POST /v1/users/make-admin (admin only)
func (h *Handler) MakeAdmin(c *gin.Context) {
	var req model.EditClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.MakeAdmin(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to grant admin")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me - GET /v1/users/me (authenticated)
func (h *Handler) Me(c *gin.Context) {
	email := middleware.UserEmail(c)
	if email == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	res, err := h.service.GetValidatedUser(c.Request.Context(), email)
	if err != nil {
		response.InternalServerError(c, "failed to load account")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, model.ToUserResponse(res.Data()))
}
