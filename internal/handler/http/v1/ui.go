package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get UI state
// @Tags UI
// @Produce json
// @Success 200 {object} UIStateResponse
// @Router /ui [get]
func (h *Handler) getUIState(c *gin.Context) {
	c.JSON(http.StatusOK, UIStateToResponse(h.ui.Snapshot()))
}

// @Summary Update UI state
// @Description Open or close a bottom sheet and the safety modal
// @Tags UI
// @Accept json
// @Produce json
// @Param ui body UIUpdateRequest true "Fields to change"
// @Success 200 {object} UIStateResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /ui [patch]
func (h *Handler) updateUIState(c *gin.Context) {
	var input UIUpdateRequest
	log := h.logger.WithField("method", "updateUIState")

	if !h.bind(c, log, &input) {
		return
	}

	if input.ActiveSheet != nil {
		h.ui.SetActiveSheet(*input.ActiveSheet)
	}
	if input.ShowSafetyModal != nil {
		h.ui.SetSafetyModal(*input.ShowSafetyModal)
	}
	c.JSON(http.StatusOK, UIStateToResponse(h.ui.Snapshot()))
}

// @Summary Show a toast
// @Description The toast hides itself after the configured duration
// @Tags UI
// @Accept json
// @Produce json
// @Param toast body ToastRequest true "Toast message"
// @Success 200 {object} UIStateResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /ui/toast [post]
func (h *Handler) showToast(c *gin.Context) {
	var input ToastRequest
	log := h.logger.WithField("method", "showToast")

	if !h.bind(c, log, &input) {
		return
	}

	h.ui.ShowToast(input.Message)
	c.JSON(http.StatusOK, UIStateToResponse(h.ui.Snapshot()))
}

// @Summary Hide the toast
// @Tags UI
// @Success 204 "No Content"
// @Router /ui/toast [delete]
func (h *Handler) hideToast(c *gin.Context) {
	h.ui.HideToast()
	c.Status(http.StatusNoContent)
}
