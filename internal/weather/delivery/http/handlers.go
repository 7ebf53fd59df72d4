package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// SetCity godoc
// @Summary     Set the city to look up
// @Description Updates the city text and resolves its forecast. Short text is held back without a lookup, an empty text resets the state.
// @Tags        Weather
// @Accept      json
// @Produce     json
// @Param       body body setCityReq true "City text"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/weather/city [PUT]
func (h *handler) SetCity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetCityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	snap := h.uc.SetCity(ctx, req.City)

	response.OK(c, newSnapshotResp(snap))
}

// Get godoc
// @Summary     Current weather state
// @Description Returns the current city, lookup status, resolved location and forecast.
// @Tags        Weather
// @Accept      json
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/weather [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	snap := h.uc.Snapshot(ctx)

	response.OK(c, newSnapshotResp(snap))
}
