package http

import (
	"github.com/gin-gonic/gin"
)

// processSetCityReq binds the city request body. An empty city is valid,
// it resets the lookup state.
func (h *handler) processSetCityReq(c *gin.Context) (setCityReq, error) {
	var req setCityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
