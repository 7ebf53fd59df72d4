package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/packing"
	"travel-planner/pkg/log"
)

// Handler is the public interface for the packing HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc packing.UseCase
}

// New creates a new HTTP handler for the packing domain.
func New(l log.Logger, uc packing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
