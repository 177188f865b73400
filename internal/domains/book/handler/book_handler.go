package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/response"
)

// Handler - book HTTP endpoints
type Handler struct {
	service service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// ListBooks - GET /v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	res, err := h.service.GetBooks(c.Request.Context(), page)
	if err != nil {
		response.InternalServerError(c, "failed to list books")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// GetBook - GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	res, err := h.service.GetBookByID(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to get book")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// CreateBook - POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "failed to create book")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusCreated, res.Data())
}

// UpdateBook - PUT /v1/books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		response.InternalServerError(c, "failed to update book")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// DeleteBook - DELETE /v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	res, err := h.service.DeleteBook(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to delete book")
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
