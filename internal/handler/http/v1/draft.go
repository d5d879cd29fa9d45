package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get the current draft
// @Tags Draft
// @Produce json
// @Success 200 {object} DraftResponse
// @Failure 404 {object} map[string]string "No draft"
// @Router /draft [get]
func (h *Handler) getDraft(c *gin.Context) {
	draft := h.reports.Draft()
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}
	c.JSON(http.StatusOK, DraftToResponse(draft))
}

// @Summary Replace the draft
// @Tags Draft
// @Accept json
// @Produce json
// @Param draft body DraftRequest true "Draft"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /draft [put]
func (h *Handler) setDraft(c *gin.Context) {
	var input DraftRequest
	log := h.logger.WithField("method", "setDraft")

	if !h.bind(c, log, &input) {
		return
	}

	h.reports.SetDraft(DTOToDraft(input))
	c.JSON(http.StatusOK, DraftToResponse(h.reports.Draft()))
}

// @Summary Update draft fields
// @Description Only the provided fields are changed
// @Tags Draft
// @Accept json
// @Produce json
// @Param draft body DraftRequest true "Fields to change"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /draft [patch]
func (h *Handler) updateDraft(c *gin.Context) {
	var input DraftRequest
	log := h.logger.WithField("method", "updateDraft")

	if !h.bind(c, log, &input) {
		return
	}

	h.reports.UpdateDraft(DTOToDraft(input))
	c.JSON(http.StatusOK, DraftToResponse(h.reports.Draft()))
}

// @Summary Discard the draft
// @Tags Draft
// @Success 204 "No Content"
// @Router /draft [delete]
func (h *Handler) clearDraft(c *gin.Context) {
	h.reports.ClearDraft()
	c.Status(http.StatusNoContent)
}
