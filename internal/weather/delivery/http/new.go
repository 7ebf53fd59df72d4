package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/weather"
	"travel-planner/pkg/log"
)

// Handler is the public interface for the weather HTTP delivery layer.
type Handler interface {
	SetCity(c *gin.Context)
	Get(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc weather.UseCase
}

// New creates a new HTTP handler for the weather domain.
func New(l log.Logger, uc weather.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
