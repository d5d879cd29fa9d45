package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/dongmunseodap/internal/geo"
)

// @Summary Resolve the device position
// @Description Reverse geocode the position and store it as the current location
// @Tags Location
// @Accept json
// @Produce json
// @Param position body ResolveLocationRequest true "Device position"
// @Success 200 {object} LocationDTO
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /location/resolve [post]
func (h *Handler) resolveLocation(c *gin.Context) {
	var input ResolveLocationRequest
	log := h.logger.WithField("method", "resolveLocation")

	if !h.bind(c, log, &input) {
		return
	}

	pos := geo.Position{Lat: input.Lat, Lng: input.Lng, Accuracy: input.Accuracy}
	if input.Timestamp != nil {
		pos.Timestamp = *input.Timestamp
	} else {
		pos.Timestamp = h.clock.Now()
	}

	h.ui.SetLocationLoading(true)
	location := geo.ResolveLocation(c.Request.Context(), pos, h.geocoder, h.logger)
	h.ui.SetCurrentLocation(&location)
	h.ui.SetLocationLoading(false)

	c.JSON(http.StatusOK, LocationToDTO(location))
}

// @Summary Report a geolocation failure
// @Description Map the device error code to a message and keep it in the UI state
// @Tags Location
// @Accept json
// @Produce json
// @Param failure body LocationErrorRequest true "Error code"
// @Success 200 {object} LocationErrorResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /location/error [post]
func (h *Handler) reportLocationError(c *gin.Context) {
	var input LocationErrorRequest
	log := h.logger.WithField("method", "reportLocationError")

	if !h.bind(c, log, &input) {
		return
	}

	locErr := geo.ClassifyLocationError(geo.LocationErrorCode(input.Code))
	log.WithError(locErr).Info("Device geolocation failed")
	h.ui.SetLocationError(locErr.Message)

	c.JSON(http.StatusOK, LocationErrorResponse{Code: string(locErr.Code), Message: locErr.Message})
}
