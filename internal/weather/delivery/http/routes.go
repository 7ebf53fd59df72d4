package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.PUT("/city", mw.RateLimit(), h.SetCity)
	rg.GET("", mw.RateLimit(), h.Get)
}
