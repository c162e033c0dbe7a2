//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"citas-unidades/internal/domain/booking"
	"citas-unidades/internal/domain/slot"
	"citas-unidades/internal/handler/api"
	resdto "citas-unidades/internal/handler/dto/response"
	"citas-unidades/internal/usecase/commands"
	"citas-unidades/internal/usecase/queries"
	"citas-unidades/tests/common/httptest"
	commandsmock "citas-unidades/tests/mock/commands"
	queriesmock "citas-unidades/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PanelHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockStatus  *commandsmock.MockStatusCommands
	mockQueries *queriesmock.MockBookingQueries
	handler     *api.PanelHandler
}

func (s *PanelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockStatus = commandsmock.NewMockStatusCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewPanelHandler(s.mockStatus, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		// Mock authenticated session
		c.Set("session_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.GET("/panel/citas", authMiddleware, s.handler.List)
	s.router.PATCH("/panel/citas/:ticket/status", authMiddleware, s.handler.UpdateStatus)
	s.router.POST("/panel/citas/status", authMiddleware, s.handler.UpdateStatusBatch)
}

func (s *PanelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPanelHandlerSuite(t *testing.T) {
	suite.Run(t, new(PanelHandlerTestSuite))
}

func panelListItem(ticketID string, status booking.Status) *queries.BookingListItem {
	return &queries.BookingListItem{
		TicketID:     ticketID,
		Date:         "2025-03-03",
		SlotName:     "08:00-10:00",
		PlatePrimary: "ABC-123",
		DriverName:   "Juan Perez",
		Status:       status.String(),
		StatusLabel:  status.Label(),
		CreatedAt:    time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC),
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *PanelHandlerTestSuite) TestList() {
	url := "/panel/citas"
	token := "test-token"

	items := []*queries.BookingListItem{
		panelListItem("TKT-00000001", booking.StatusQueued),
		panelListItem("TKT-00000002", booking.StatusServed),
	}

	type listResponse struct {
		Citas []*resdto.BookingListItemResponse `json:"citas"`
	}

	s.Run("success: returns 200 OK with every booking", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var response listResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Citas, 2)
		s.Equal("TKT-00000001", response.Citas[0].TicketID)
		s.Equal("EN COLA", response.Citas[0].StatusLabel)
		s.Equal("TKT-00000002", response.Citas[1].TicketID)
		s.Equal("SERVED", response.Citas[1].Status)
	})

	s.Run("success: date filter narrows the listing", func() {
		date := slot.NewDate(2025, time.March, 3)
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{Date: &date}).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-03-03", nil, token)

		var response listResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Citas, 1)
		s.Equal("TKT-00000001", response.Citas[0].TicketID)
	})

	s.Run("success: status filter narrows the listing", func() {
		status := booking.StatusServed
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{Status: &status}).
			Return(items[1:], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=SERVED", nil, token)

		var response listResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Citas, 1)
		s.Equal("TKT-00000002", response.Citas[0].TicketID)
	})

	s.Run("success: an empty store lists nothing", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var response listResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Citas)
	})

	s.Run("error: 400 Bad Request for a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=03-03-2025", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date")
	})

	s.Run("error: 400 Bad Request for a stored-form status token", func() {
		// The Spanish labels live in the store, not on the API.
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=EN%20COLA", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 503 Service Unavailable on store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListFilter{}).
			Return(nil, queries.ErrStoreFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Record store unavailable")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *PanelHandlerTestSuite) TestUpdateStatus() {
	ticketID := "TKT-0A1B2C3D"
	url := "/panel/citas/" + ticketID + "/status"
	token := "test-token"

	reqBody := map[string]any{"status": "IN_PROGRESS"}

	s.Run("success: returns 204 No Content", func() {
		s.mockStatus.EXPECT().SetStatus(gomock.Any(), ticketID, booking.StatusInProgress).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusNoContent, nil)
	})

	s.Run("error: 400 Bad Request without a status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request for a stored-form status token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "EN COLA"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			statusError    error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				statusError:    commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "transition denied",
				statusError:    commands.ErrTransitionDenied,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Status transition not allowed",
			},
			{
				name:           "unknown status",
				statusError:    commands.ErrUnknownStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown status",
			},
			{
				name:           "store unavailable",
				statusError:    commands.ErrStoreFailure,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Record store unavailable",
			},
			{
				name:           "internal server error",
				statusError:    errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockStatus.EXPECT().SetStatus(gomock.Any(), ticketID, booking.StatusInProgress).
					Return(tc.statusError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdateStatusBatch
// ================================================================================

func (s *PanelHandlerTestSuite) TestUpdateStatusBatch() {
	url := "/panel/citas/status"
	token := "test-token"

	reqBody := map[string]any{"updates": map[string]string{
		"TKT-00000001": "SERVED",
		"TKT-00000002": "SERVED",
	}}
	changes := map[string]booking.Status{
		"TKT-00000001": booking.StatusServed,
		"TKT-00000002": booking.StatusServed,
	}

	s.Run("success: returns 200 OK when every update lands", func() {
		s.mockStatus.EXPECT().SetStatusBatch(gomock.Any(), changes).
			Return(&commands.BatchStatusResult{Requested: 2, Updated: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var response resdto.BatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Requested)
		s.Equal(2, response.Updated)
		s.Empty(response.Missing)
	})

	s.Run("success: absent tickets are reported, not fatal", func() {
		s.mockStatus.EXPECT().SetStatusBatch(gomock.Any(), changes).
			Return(&commands.BatchStatusResult{
				Requested: 2,
				Updated:   1,
				Missing:   []string{"TKT-00000002"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)

		var response resdto.BatchStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Requested)
		s.Equal(1, response.Updated)
		s.Equal([]string{"TKT-00000002"}, response.Missing)
	})

	s.Run("error: 400 Bad Request for an empty update map", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"updates": map[string]string{}}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request when any entry has an unknown status", func() {
		body := map[string]any{"updates": map[string]string{"TKT-00000001": "DONE"}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 409 Conflict when a transition is denied", func() {
		s.mockStatus.EXPECT().SetStatusBatch(gomock.Any(), changes).
			Return(nil, commands.ErrTransitionDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Status transition not allowed")
	})

	s.Run("error: 401 Unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 503 carries the unconfirmed outcome as detail", func() {
		s.mockStatus.EXPECT().SetStatusBatch(gomock.Any(), changes).
			Return(&commands.BatchStatusResult{Requested: 2, Unknown: 2}, commands.ErrStoreFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Batch write outcome unknown")

		var response struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail *resdto.BatchStatusResponse `json:"detail"`
		}
		err := httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Require().NoError(err)
		s.Require().NotNil(response.Detail)
		s.Equal(2, response.Detail.Requested)
		s.Equal(0, response.Detail.Updated)
		s.Equal(2, response.Detail.Unknown)
	})

	s.Run("error: 503 without detail when the listing itself failed", func() {
		s.mockStatus.EXPECT().SetStatusBatch(gomock.Any(), changes).
			Return(nil, commands.ErrStoreFailure).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Batch write outcome unknown")

		var response struct {
			Detail *resdto.BatchStatusResponse `json:"detail"`
		}
		err := httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Require().NoError(err)
		s.Nil(response.Detail)
	})
}
