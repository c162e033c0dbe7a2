package api

import (
	"errors"
	"net/http"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	reqdto "citas-unidades/internal/handler/dto/request"
	resdto "citas-unidades/internal/handler/dto/response"
	"citas-unidades/internal/handler/httperr"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PanelHandler serves the operations panel: booking listings and status
// changes. Every route sits behind the admin session middleware.
type PanelHandler struct {
	status commands.StatusCommands
	q      queries.BookingQueries
}

func NewPanelHandler(status commands.StatusCommands, q queries.BookingQueries) *PanelHandler {
	return &PanelHandler{status: status, q: q}
}

// @Summary List bookings
// @Description List bookings with optional date and status filters
// @Tags panel
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date filter (2006-01-02)"
// @Param status query string false "Status filter (QUEUED, IN_PROGRESS, SERVED, CANCELLED)"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /panel/citas [get]
func (h *PanelHandler) List(c *gin.Context) {
	var filter queries.ListFilter

	if v := c.Query("date"); v != "" {
		date, err := slot.ParseDate(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		filter.Date = &date
	}
	if v := c.Query("status"); v != "" {
		status, err := booking.ParseStatus(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
			return
		}
		filter.Status = &status
	}

	items, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, queries.ErrStoreFailure) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Record store unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"citas": resdto.FromBookingList(items)})
}

// @Summary Update booking status
// @Description Set the status of one booking by ticket id
// @Tags panel
// @Accept json
// @Security BearerAuth
// @Param ticket path string true "Ticket ID"
// @Param request body reqdto.UpdateStatusRequest true "Status update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /panel/citas/{ticket}/status [patch]
func (h *PanelHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	if err := h.status.SetStatus(c.Request.Context(), c.Param("ticket"), status); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrTransitionDenied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
		case errors.Is(err, commands.ErrUnknownStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		case errors.Is(err, commands.ErrStoreFailure):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Record store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update booking statuses in batch
// @Description Apply status changes to several bookings in one store write
// @Tags panel
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BatchStatusRequest true "Batch status request"
// @Success 200 {object} resdto.BatchStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /panel/citas/status [post]
func (h *PanelHandler) UpdateStatusBatch(c *gin.Context) {
	var req reqdto.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	changes, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	result, err := h.status.SetStatusBatch(c.Request.Context(), changes)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUnknownStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		case errors.Is(err, commands.ErrTransitionDenied):
			httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
		case errors.Is(err, commands.ErrStoreFailure):
			// The write may have partially applied; the detail reports
			// every attempted update as unknown so the panel can re-read.
			var detail any
			if result != nil {
				detail = resdto.FromBatchStatusResult(result)
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Batch write outcome unknown", detail)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBatchStatusResult(result))
}
