package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

// SetupRouter wires every endpoint. Mutating author and book endpoints
// require the admin grant; comments require any authenticated user.
func SetupRouter(app *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.Recovery(app.ErrorLog))

	authed := middleware.AuthMiddleware(app.JWTManager)
	admin := middleware.AdminMiddleware()

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			if err := app.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		authors := v1.Group("/authors")
		{
			authors.GET("", app.AuthorHandler.ListAuthors)
			authors.GET("/filter", app.AuthorHandler.FilterAuthors)
			authors.GET("/collection/:ids", app.AuthorCollectionHandler.GetAuthorsByIDs)
			authors.GET("/:id", app.AuthorHandler.GetAuthor)

			authors.POST("", authed, admin, app.AuthorHandler.CreateAuthor)
			authors.POST("/collection", authed, admin, app.AuthorCollectionHandler.CreateAuthors)
			authors.PUT("/:id", authed, admin, app.AuthorHandler.UpdateAuthor)
			authors.PATCH("/:id", authed, admin, app.AuthorHandler.PatchAuthor)
			authors.DELETE("/:id", authed, admin, app.AuthorHandler.DeleteAuthor)
		}

		books := v1.Group("/books")
		{
			books.GET("", app.BookHandler.ListBooks)
			books.GET("/:id", app.BookHandler.GetBook)

			books.POST("", authed, admin, app.BookHandler.CreateBook)
			books.PUT("/:id", authed, admin, app.BookHandler.UpdateBook)
			books.DELETE("/:id", authed, admin, app.BookHandler.DeleteBook)

			comments := books.Group("/:id/comments")
			{
				comments.GET("", app.CommentHandler.ListComments)
				comments.GET("/:commentId", app.CommentHandler.GetComment)

				comments.POST("", authed, app.CommentHandler.CreateComment)
				comments.PUT("/:commentId", authed, app.CommentHandler.UpdateComment)
				comments.DELETE("/:commentId", authed, app.CommentHandler.DeleteComment)
			}
		}

		users := v1.Group("/users")
		{
			users.POST("/register", app.UserHandler.Register)
			users.POST("/login", app.UserHandler.Login)
			users.GET("/refresh-token", authed, app.UserHandler.RefreshToken)
			users.GET("/me", authed, app.UserHandler.Me)
			users.POST("/make-admin", authed, admin, app.UserHandler.MakeAdmin)
		}
	}

	return router
}
