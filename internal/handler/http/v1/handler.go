package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/dongmunseodap/internal/config"
	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/service"
	"github.com/shenikar/dongmunseodap/internal/storage"
	"github.com/sirupsen/logrus"
)

// Services - состояние приложения, с которым работают страницы
type Services struct {
	Reports  *service.ReportStore
	Map      *service.MapStore
	UI       *service.UIStore
	Settings *storage.SettingsCollection
	// Geocoder может быть nil: тогда адресом становятся координаты
	Geocoder geo.ReverseGeocoder
	Clock    clockwork.Clock
}

type Handler struct {
	reports  *service.ReportStore
	maps     *service.MapStore
	ui       *service.UIStore
	settings *storage.SettingsCollection
	geocoder geo.ReverseGeocoder
	clock    clockwork.Clock
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(svc Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	clock := svc.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Handler{
		reports:  svc.Reports,
		maps:     svc.Map,
		ui:       svc.UI,
		settings: svc.Settings,
		geocoder: svc.Geocoder,
		clock:    clock,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bind разбирает JSON и проверяет его валидатором. При ошибке ответ уже отправлен
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	return h.bindJSON(c, log, input) && h.validateInput(c, log, input)
}

func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

func (h *Handler) validateInput(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
