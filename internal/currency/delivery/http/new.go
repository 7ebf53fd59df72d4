package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/currency"
	"travel-planner/pkg/log"
)

// Handler is the public interface for the currency HTTP delivery layer.
type Handler interface {
	Update(c *gin.Context)
	Get(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc currency.UseCase
}

// New creates a new HTTP handler for the currency domain.
func New(l log.Logger, uc currency.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
