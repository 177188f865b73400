package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	"library-api/internal/shared/pagination"
	"library-api/internal/shared/response"
)

// Handler - author HTTP endpoints
type Handler struct {
	service service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// ListAuthors - GET /v1/authors
func (h *Handler) ListAuthors(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	res, err := h.service.GetAuthors(c.Request.Context(), page)
	if err != nil {
		response.InternalServerError(c, "failed to list authors")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// FilterAuthors - GET /v1/authors/filter
func (h *Handler) FilterAuthors(c *gin.Context) {
	var filter model.AuthorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid filter parameters")
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "invalid pagination parameters")
		return
	}

	res, err := h.service.GetAuthorsWithFilter(c.Request.Context(), filter, page)
	if err != nil {
		response.InternalServerError(c, "failed to filter authors")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// GetAuthor - GET /v1/authors/:id
func (h *Handler) GetAuthor(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	res, err := h.service.GetAuthorByID(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to get author")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// CreateAuthor - POST /v1/authors
// Accepts JSON, or multipart form with an optional photo file.
func (h *Handler) CreateAuthor(c *gin.Context) {
	var req model.CreateAuthorRequest
	photo, ok := bindAuthorPayload(c, &req)
	if !ok {
		return
	}

	res, err := h.service.CreateAuthor(c.Request.Context(), req, photo)
	if err != nil {
		response.InternalServerError(c, "failed to create author")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusCreated, res.Data())
}

// UpdateAuthor - PUT /v1/authors/:id
func (h *Handler) UpdateAuthor(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	create := model.CreateAuthorRequest{}
	photo, bound := bindAuthorPayload(c, &create)
	if !bound {
		return
	}
	req = model.UpdateAuthorRequest(create)

	res, err := h.service.UpdateAuthor(c.Request.Context(), id, req, photo)
	if err != nil {
		response.InternalServerError(c, "failed to update author")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// PatchAuthor - PATCH /v1/authors/:id
func (h *Handler) PatchAuthor(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	var req model.PatchAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.PatchAuthor(c.Request.Context(), id, req)
	if err != nil {
		response.InternalServerError(c, "failed to patch author")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// DeleteAuthor - DELETE /v1/authors/:id
func (h *Handler) DeleteAuthor(c *gin.Context) {
	id, ok := authorID(c)
	if !ok {
		return
	}

	res, err := h.service.DeleteAuthor(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to delete author")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	c.Status(http.StatusNoContent)
}

func authorID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid author id")
		return 0, false
	}
	return id, true
}

// bindAuthorPayload binds JSON or multipart form, returning the optional
// photo upload when the request is multipart.
func bindAuthorPayload(c *gin.Context, req *model.CreateAuthorRequest) (*multipart.FileHeader, bool) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBind(req); err != nil {
			response.BadRequest(c, "invalid form data")
			return nil, false
		}
		photo, err := c.FormFile("photo")
		if err != nil && err != http.ErrMissingFile {
			response.BadRequest(c, "invalid photo upload")
			return nil, false
		}
		return photo, true
	}

	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "invalid request body")
		return nil, false
	}
	return nil, true
}
