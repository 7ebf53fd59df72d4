package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Create godoc
// @Summary     Add a packing item
// @Description Appends a new item to the end of the packing list.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/packing/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List packing items
// @Description Returns the packing list in insertion order plus packing statistics.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/packing/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Toggle godoc
// @Summary     Toggle an item's packed flag
// @Description Flips the packed flag of an item. Unknown IDs leave the list untouched.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/packing/items/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Toggle(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete an item
// @Description Removes an item by ID. Unknown IDs leave the list untouched.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/packing/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Clear the packing list
// @Description Empties the whole list. The request must carry confirmed=true, otherwise nothing is deleted.
// @Tags        Packing
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Confirmation"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/packing/items [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClearReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ClearAll(ctx, req.toConfirmer())
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearAll: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClearResp(output))
}
