package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/shenikar/dongmunseodap/internal/service"
)

// @Summary Get map state
// @Description Viewport, markers, selection and filters of the map
// @Tags Map
// @Produce json
// @Success 200 {object} MapStateResponse
// @Router /map [get]
func (h *Handler) getMapState(c *gin.Context) {
	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}

// @Summary Move the map
// @Description Set center and/or zoom. Zoom is clamped to 10..19
// @Tags Map
// @Accept json
// @Produce json
// @Param viewport body ViewportRequest true "Viewport"
// @Success 200 {object} MapStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /map/viewport [put]
func (h *Handler) setViewport(c *gin.Context) {
	var input ViewportRequest
	log := h.logger.WithField("method", "setViewport")

	if !h.bind(c, log, &input) {
		return
	}
	if input.Center == nil && input.Zoom == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "center or zoom is required"})
		return
	}

	ctx := c.Request.Context()
	switch {
	case input.Center != nil && input.Zoom != nil:
		h.maps.MoveToLocation(ctx, DTOToLatLng(*input.Center), *input.Zoom)
	case input.Center != nil:
		h.maps.SetCenter(ctx, DTOToLatLng(*input.Center))
	default:
		h.maps.SetZoom(ctx, *input.Zoom)
	}

	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}

// @Summary Fit the map to points
// @Tags Map
// @Accept json
// @Produce json
// @Param bounds body FitBoundsRequest true "Points to fit"
// @Success 200 {object} MapStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /map/fit [post]
func (h *Handler) fitBounds(c *gin.Context) {
	var input FitBoundsRequest
	log := h.logger.WithField("method", "fitBounds")

	if !h.bind(c, log, &input) {
		return
	}

	points := make([]models.LatLng, 0, len(input.Points))
	for _, p := range input.Points {
		points = append(points, DTOToLatLng(p))
	}
	h.maps.FitBounds(c.Request.Context(), points)

	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}

// @Summary Change map filters
// @Description Omitted fields keep their value, an empty list hides every report
// @Tags Map
// @Accept json
// @Produce json
// @Param filters body MapFiltersRequest true "Filters"
// @Success 200 {object} MapStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /map/filters [put]
func (h *Handler) setMapFilters(c *gin.Context) {
	var input MapFiltersRequest
	log := h.logger.WithField("method", "setMapFilters")

	if !h.bind(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	if input.Types != nil {
		types := make([]models.ReportType, 0, len(input.Types))
		for _, t := range input.Types {
			types = append(types, models.ReportType(t))
		}
		h.maps.SetReportTypeFilter(ctx, types)
	}
	if input.Levels != nil {
		h.maps.SetTrafficLevelFilter(ctx, input.Levels)
	}
	if input.ShowReports != nil {
		h.maps.SetReportsVisible(ctx, *input.ShowReports)
	}
	if input.ShowAlerts != nil {
		h.maps.SetAlertsVisible(ctx, *input.ShowAlerts)
	}

	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}

// @Summary Select a report or an alert
// @Description Selection is exclusive and recenters the map on the item
// @Tags Map
// @Accept json
// @Produce json
// @Param selection body SelectRequest true "Item to select"
// @Success 200 {object} MapStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Item not found"
// @Router /map/select [post]
func (h *Handler) selectOnMap(c *gin.Context) {
	var input SelectRequest
	log := h.logger.WithField("method", "selectOnMap")

	if !h.bind(c, log, &input) {
		return
	}

	ctx := c.Request.Context()
	if input.ReportID != "" {
		report, ok := h.reports.GetReportByID(input.ReportID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		h.maps.SelectReport(ctx, report)
	} else {
		alert, ok := h.maps.AlertByID(input.AlertID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		h.maps.SelectAlert(ctx, alert)
	}

	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}

// @Summary Clear selection
// @Tags Map
// @Success 204 "No Content"
// @Router /map/select [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	h.maps.ClearSelection()
	c.Status(http.StatusNoContent)
}

// @Summary Receive a map widget event
// @Description Center, zoom, click and marker click notifications from the map widget
// @Tags Map
// @Accept json
// @Produce json
// @Param event body MapEventRequest true "Widget event"
// @Success 200 {object} MapStateResponse
// @Failure 400 {object} map[string]string "Invalid event"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Security ApiKeyAuth
// @Router /map/events [post]
func (h *Handler) handleMapEvent(c *gin.Context) {
	var input MapEventRequest
	log := h.logger.WithField("method", "handleMapEvent")

	if !h.bind(c, log, &input) {
		return
	}

	event := service.MapEvent{
		Type:     input.Type,
		Zoom:     input.Zoom,
		MarkerID: input.MarkerID,
	}
	if input.Center != nil {
		center := DTOToLatLng(*input.Center)
		event.Center = &center
	}

	if err := h.maps.HandleMapEvent(c.Request.Context(), event); err != nil {
		log.WithError(err).Warn("Map event rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, MapStateToResponse(h.maps.Snapshot()))
}
