package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/domains/errorlog"
)

// Recovery turns panics into 500 responses and appends an audit record.
// The audit write is best effort: a failing recorder never masks the response.
func Recovery(audit errorlog.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := string(debug.Stack())

				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				if audit != nil {
					if auditErr := audit.Record(c.Request.Context(), fmt.Sprint(err), stack); auditErr != nil {
						log.Error().Err(auditErr).Msg("Failed to write error audit record")
					}
				}

				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal server error",
					},
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
