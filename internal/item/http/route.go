package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, identityMiddleware gin.HandlerFunc) {
	items := g.Group("/items")

	// Search is open to anonymous callers.
	items.GET("/search", h.Search)

	items.Use(identityMiddleware)
	{
		items.POST("", h.Create)
		items.GET("", h.ListOwn)
		items.GET("/:id", h.Get)
		items.PATCH("/:id", h.Update)
		items.POST("/:id/comment", h.CreateComment)
	}
}
