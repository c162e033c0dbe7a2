package api

import (
	"errors"
	"net/http"

	"citas-unidades/internal/domain/slot"
	reqdto "citas-unidades/internal/handler/dto/request"
	resdto "citas-unidades/internal/handler/dto/response"
	"citas-unidades/internal/handler/httperr"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Register a slot appointment for a vehicle operation and issue a ticket
// @Tags citas
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /citas [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		case errors.Is(err, commands.ErrSlotUnknown):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot not offered on that date", nil)
		case errors.Is(err, commands.ErrSlotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is full for that date", nil)
		case errors.Is(err, commands.ErrStoreFailure):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Record store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/citas/"+view.TicketID)
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Slot availability
// @Description List slots with remaining capacity for a date
// @Tags citas
// @Produce json
// @Param date query string true "Date (2006-01-02)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /citas/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	date, err := slot.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing date", nil)
		return
	}

	views, err := h.q.Availability(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, queries.ErrStoreFailure) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Record store unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailability(date, views))
}

// @Summary Get booking
// @Description Look up a booking by its ticket id
// @Tags citas
// @Produce json
// @Param ticket path string true "Ticket ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /citas/{ticket} [get]
func (h *BookingHandler) GetByTicket(c *gin.Context) {
	view, err := h.q.GetByTicket(c.Request.Context(), c.Param("ticket"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, queries.ErrStoreFailure):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Record store unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
