package api

import (
	"net/http"

	resdto "workhive/internal/handler/dto/response"
	"workhive/internal/handler/httperr"
	"workhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Blocked dates
// @Description List the dates a workspace cannot be booked, from today onward
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} resdto.BlockedDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /workspaces/{id}/blocked-dates [get]
func (h *AvailabilityHandler) BlockedDates(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	view, err := h.q.BlockedDates(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockedDatesView(view))
}
