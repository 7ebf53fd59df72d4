package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the add item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClearReq binds the clear confirmation body. An empty body counts
// as a declined confirmation, not an error.
func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}
