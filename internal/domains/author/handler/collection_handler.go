package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/author/model"
	"library-api/internal/domains/author/service"
	"library-api/internal/shared/response"
)

// CollectionHandler - endpoints over author sets
type CollectionHandler struct {
	service service.CollectionService
}

func NewCollectionHandler(svc service.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: svc}
}

// GetAuthorsByIDs - GET /v1/authors/collection/:ids
// :ids is a comma-separated list, e.g. "1,2,3".
func (h *CollectionHandler) GetAuthorsByIDs(c *gin.Context) {
	res, err := h.service.GetAuthorsByIDs(c.Request.Context(), c.Param("ids"))
	if err != nil {
		response.InternalServerError(c, "failed to get authors")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusOK, res.Data())
}

// CreateAuthors - POST /v1/authors/collection
func (h *CollectionHandler) CreateAuthors(c *gin.Context) {
	var reqs []model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.CreateAuthors(c.Request.Context(), reqs)
	if err != nil {
		response.InternalServerError(c, "failed to create authors")
		return
	}
	if !res.IsSuccess() {
		response.Failure(c, res)
		return
	}
	response.Success(c, http.StatusCreated, res.Data())
}
