package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.PUT("/query", mw.RateLimit(), h.Update)
	rg.GET("", mw.RateLimit(), h.Get)
}
