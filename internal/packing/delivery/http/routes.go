package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", mw.RateLimit(), h.List)
		items.POST("/:id/toggle", mw.RateLimit(), h.Toggle)
		items.DELETE("/:id", mw.RateLimit(), h.Delete)
		items.DELETE("", mw.RateLimit(), h.Clear)
	}
}
