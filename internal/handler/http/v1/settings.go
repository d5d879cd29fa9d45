package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get a setting
// @Tags Settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} SettingResponse
// @Failure 404 {object} map[string]string "Setting not found"
// @Router /settings/{key} [get]
func (h *Handler) getSetting(c *gin.Context) {
	key := c.Param("key")

	value, ok := h.settings.Raw(c.Request.Context(), key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, SettingResponse{Key: key, Value: value})
}

// @Summary Store a setting
// @Description Any JSON value, other keys are kept
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body SettingRequest true "Setting value"
// @Success 200 {object} SettingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/{key} [put]
func (h *Handler) putSetting(c *gin.Context) {
	var input SettingRequest
	key := c.Param("key")
	log := h.logger.WithField("method", "putSetting").WithField("key", key)

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.settings.Set(c.Request.Context(), key, input.Value); err != nil {
		log.WithError(err).Error("Failed to store setting")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, SettingResponse{Key: key, Value: input.Value})
}
