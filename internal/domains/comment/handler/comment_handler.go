package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-api/internal/domains/comment/model"
	"library-api/internal/domains/comment/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
)

// Handler - comment HTTP endpoints, nested under books
type Handler struct {
	service service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// ListComments - GET /v1/books/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	bookID, ok := bookID(c)
	if !ok {
		return
	}

	if c.Query("includeDeleted") == "true" && middleware.IsAdmin(c) {
		r, err := h.service.GetCommentsIncludingDeleted(c.Request.Context(), bookID)
		if err != nil {
			response.InternalServerError(c, "failed to list comments")
			return
		}
		if !r.IsSuccess() {
			response.Failure(c, r)
			return
		}
		response.Success(c, http.StatusOK, r.Data())
		return
	}

	r, err := h.service.GetComments(c.Request.Context(), bookID)
	if err != nil {
		response.InternalServerError(c, "failed to list comments")
		return
	}
	if !r.IsSuccess() {
		response.Failure(c, r)
		return
	}
	response.Success(c, http.StatusOK, r.Data())
}

// GetComment - GET /v1/books/:id/comments/:commentId
func (h *Handler) GetComment(c *gin.Context) {
	bookID, ok := bookID(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	res, err := h.service.GetCommentByID(c.Request.Context(), bookID, commentID)
	if err != nil {
		response.InternalServerError(c, "failed to get comment")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// CreateComment - POST /v1/books/:id/comments (authenticated)
func (h *Handler) CreateComment(c *gin.Context) {
	bookID, ok := bookID(c)
	if !ok {
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.CreateComment(c.Request.Context(), bookID, middleware.UserEmail(c), req)
	if err != nil {
		response.InternalServerError(c, "failed to create comment")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusCreated, res.Data())
}

// UpdateComment - PUT /v1/books/:id/comments/:commentId (authenticated)
func (h *Handler) UpdateComment(c *gin.Context) {
	bookID, ok := bookID(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.UpdateComment(c.Request.Context(), bookID, commentID, middleware.UserEmail(c), req)
	if err != nil {
		response.InternalServerError(c, "failed to update comment")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// DeleteComment - DELETE /v1/books/:id/comments/:commentId (authenticated)
func (h *Handler) DeleteComment(c *gin.Context) {
	bookID, ok := bookID(c)
	if !ok {
		return
	}
	commentID, ok := commentID(c)
	if !ok {
		return
	}

	res, err := h.service.DeleteComment(c.Request.Context(), bookID, commentID, middleware.UserEmail(c))
	if err != nil {
		response.InternalServerError(c, "failed to delete comment")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}

func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

func commentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return uuid.Nil, false
	}
	return id, true
}
