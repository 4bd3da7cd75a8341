package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, identityMiddleware gin.HandlerFunc) {
	// Photo content is readable without identity; mutations require it.
	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.ServePhoto)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
		photos.DELETE("/:id", identityMiddleware, h.Delete)
	}

	items := g.Group("/items")
	{
		items.GET("/:id/photos", h.ListByItem)
		items.POST("/:id/photos", identityMiddleware, h.Upload)
	}
}
