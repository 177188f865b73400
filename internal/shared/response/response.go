package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/result"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// Failure maps a service-result failure onto the transport envelope.
func Failure[T any](c *gin.Context, res result.Result[T]) {
	t := res.ErrorType()
	code := map[result.ErrorType]string{
		result.NotFound:   "NOT_FOUND",
		result.BadRequest: "BAD_REQUEST",
		result.Forbidden:  "FORBIDDEN",
	}[t]
	if code == "" {
		code = "INTERNAL_SERVER_ERROR"
	}
	ErrorResponse(c, t.HTTPStatus(), code, res.ErrorMessage())
}
