package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// Update godoc
// @Summary     Update the conversion query
// @Description Applies new amount and currency pair and recomputes the conversion. Non-numeric amounts are rejected without touching state.
// @Tags        Currency
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Conversion query"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/currency/query [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSnapshotResp(snap))
}

// Get godoc
// @Summary     Current conversion state
// @Description Returns the current query, its result and the supported currencies.
// @Tags        Currency
// @Accept      json
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/currency [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	snap := h.uc.Snapshot(ctx)

	response.OK(c, newSnapshotResp(snap))
}
