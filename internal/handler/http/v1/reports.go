package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/dongmunseodap/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary List reports
// @Description Reload reports from storage and apply type, level and time filters
// @Tags Reports
// @Produce json
// @Param types query string false "Comma-separated report types (driver,transit,post)"
// @Param levels query string false "Comma-separated traffic levels (1-5)"
// @Param time query string false "Time window" Enums(all, today, recent)
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	filter, err := parseReportFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reports.LoadReports(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(h.reports.FilteredReports(filter)))
}

// @Summary Get report counters
// @Description Total number of reports and number of reports created today
// @Tags Reports
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	if err := h.reports.LoadReports(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	summary := h.reports.Summary()
	c.JSON(http.StatusOK, SummaryResponse{Total: summary.Total, Today: summary.Today})
}

// @Summary Find reports nearby
// @Description Reports within radius_km (default 5) of a point
// @Tags Reports
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Radius in kilometers" default(5)
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/nearby [get]
func (h *Handler) getNearbyReports(c *gin.Context) {
	log := h.logger.WithField("method", "getNearbyReports")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radius := 0.0
	if raw := c.Query("radius_km"); raw != "" {
		var err error
		if radius, err = strconv.ParseFloat(raw, 64); err != nil || radius < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
	}

	if err := h.reports.LoadReports(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	nearby := h.reports.GetReportsByLocation(models.LatLng{Lat: lat, Lng: lng}, radius)
	c.JSON(http.StatusOK, ModelsToReportResponses(nearby))
}

// @Summary List reports created on this device
// @Tags Reports
// @Produce json
// @Success 200 {array} ReportResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/mine [get]
func (h *Handler) getUserReports(c *gin.Context) {
	log := h.logger.WithField("method", "getUserReports")

	if err := h.reports.LoadUserReports(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to load user reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(h.reports.Snapshot().UserReports))
}

// @Summary Get the last submitted report
// @Tags Reports
// @Produce json
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Nothing submitted yet"
// @Router /reports/last [get]
func (h *Handler) getLastSubmitted(c *gin.Context) {
	last := h.reports.Snapshot().LastSubmittedReport
	if last == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report submitted"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(last))
}

// @Summary Get report by ID
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, ok := h.reports.GetReportByID(id)
	if !ok {
		// Отчет мог появиться в хранилище после последней загрузки
		if err := h.reports.LoadReports(c.Request.Context()); err != nil {
			log.WithError(err).Error("Failed to load reports")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		report, ok = h.reports.GetReportByID(id)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Delete a report
// @Tags Reports
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id} [delete]
func (h *Handler) deleteReport(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteReport").WithField("id", id)

	removed, err := h.reports.DeleteReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to delete report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete report"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit a driver report
// @Description Report traffic from the driver's current location
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateDriverReportRequest true "Driver report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Submission failed"
// @Router /reports/driver [post]
func (h *Handler) createDriverReport(c *gin.Context) {
	var input CreateDriverReportRequest
	log := h.logger.WithField("method", "createDriverReport")

	if !h.bindJSON(c, log, &input) || !h.validateForm(c, log, models.ReportTypeDriver, input) {
		return
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = driverDescription(input.TrafficLevel)
	}

	h.submitReport(c, log, models.CreateReportRequest{
		Type:         models.ReportTypeDriver,
		Location:     DTOToLocation(*input.Location),
		Description:  description,
		TrafficLevel: input.TrafficLevel,
	}, ToastReportSubmitted)
}

// @Summary Submit a transit report
// @Description Report a delay on a bus route from the passenger's location
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreateTransitReportRequest true "Transit report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Submission failed"
// @Router /reports/transit [post]
func (h *Handler) createTransitReport(c *gin.Context) {
	var input CreateTransitReportRequest
	log := h.logger.WithField("method", "createTransitReport")

	if !h.bindJSON(c, log, &input) {
		return
	}
	input.BusRoute = strings.TrimSpace(input.BusRoute)
	if !h.validateForm(c, log, models.ReportTypeTransit, input) {
		return
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = transitDescription(input.TrafficLevel, input.BusRoute)
	}

	h.submitReport(c, log, models.CreateReportRequest{
		Type:         models.ReportTypeTransit,
		Location:     DTOToLocation(*input.Location),
		Description:  description,
		TrafficLevel: input.TrafficLevel,
		BusRoute:     input.BusRoute,
	}, ToastReportSubmitted)
}

// @Summary Submit an after-the-fact report
// @Description Report traffic observed earlier, at the current location or at a typed address
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body CreatePostReportRequest true "After-the-fact report"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Submission failed"
// @Router /reports/post [post]
func (h *Handler) createPostReport(c *gin.Context) {
	var input CreatePostReportRequest
	log := h.logger.WithField("method", "createPostReport")

	if !h.bindJSON(c, log, &input) {
		return
	}
	input.Address = strings.TrimSpace(input.Address)
	if !h.validateForm(c, log, models.ReportTypePost, input) {
		return
	}

	observedAt := h.clock.Now().Add(-defaultObservedOffset)
	if input.ObservedAt != nil {
		observedAt = *input.ObservedAt
	}

	var location models.Location
	if input.UseCurrentLocation {
		location = DTOToLocation(*input.Location)
	} else {
		// Прямого геокодирования нет: введенный адрес привязывается к центру карты
		center := h.maps.Snapshot().Center
		location = models.Location{Lat: center.Lat, Lng: center.Lng, Address: input.Address}
	}
	location.Timestamp = &observedAt

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = postDescription(input.TrafficLevel, observedAt)
	}

	h.submitReport(c, log, models.CreateReportRequest{
		Type:         models.ReportTypePost,
		Location:     location,
		Description:  description,
		TrafficLevel: input.TrafficLevel,
	}, ToastPostReportSubmitted)
}

// validateForm проверяет форму страницы и показывает пользователю подходящее уведомление
func (h *Handler) validateForm(c *gin.Context, log *logrus.Entry, reportType models.ReportType, input any) bool {
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		toast := validationToast(reportType, err)
		h.ui.ShowToast(toast)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "toast": toast})
		return false
	}
	return true
}

func (h *Handler) submitReport(c *gin.Context, log *logrus.Entry, req models.CreateReportRequest, successToast string) {
	h.ui.SetLoading(true, "")
	report, err := h.reports.CreateReport(c.Request.Context(), req)
	h.ui.SetLoading(false, "")
	if err != nil {
		log.WithError(err).Error("Failed to create report in store")
		h.ui.ShowToast(ToastReportFailed)
		c.JSON(http.StatusInternalServerError, gin.H{"error": ToastReportFailed})
		return
	}

	h.ui.ShowToast(successToast)
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

func parseReportFilter(c *gin.Context) (models.ReportFilter, error) {
	filter := models.ReportFilter{Window: models.TimeWindowAll}

	for _, raw := range splitList(c.Query("types")) {
		t := models.ReportType(raw)
		if !t.IsValid() {
			return filter, &filterError{param: "types", value: raw}
		}
		filter.Types = append(filter.Types, t)
	}

	for _, raw := range splitList(c.Query("levels")) {
		level, err := strconv.Atoi(raw)
		if err != nil || !models.IsValidTrafficLevel(level) {
			return filter, &filterError{param: "levels", value: raw}
		}
		filter.Levels = append(filter.Levels, level)
	}

	switch window := models.TimeWindow(c.DefaultQuery("time", string(models.TimeWindowAll))); window {
	case models.TimeWindowAll, models.TimeWindowToday, models.TimeWindowRecent:
		filter.Window = window
	default:
		return filter, &filterError{param: "time", value: string(window)}
	}

	return filter, nil
}

type filterError struct {
	param string
	value string
}

func (e *filterError) Error() string {
	return "invalid " + e.param + " filter: " + strconv.Quote(e.value)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
