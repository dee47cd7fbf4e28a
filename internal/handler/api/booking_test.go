//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"saba-booking/internal/domain/booking"
	"saba-booking/internal/handler/api"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/errs"
	"saba-booking/internal/pkg/jwt"
	"saba-booking/internal/usecase/commands"
	"saba-booking/internal/usecase/queries"
	"saba-booking/tests/common/httptest"
	"saba-booking/tests/common/testutil"
	commandsmock "saba-booking/tests/mock/commands"
	queriesmock "saba-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, cfg.Cookie)

	resume := jwt.NewService(cfg.Resume.Secret, time.Hour)
	g := s.router.Group("/api", middleware.NewSessionMiddleware(resume, slog.Default()).ResolveSession())
	g.POST("/booking/create", s.handler.Create)
	g.GET("/bookings/:bookingId", s.handler.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/booking/create"
	fields := map[string]string{"customer_name": "Ana Diver", "customer_email": "ana@example.com"}
	reqBody := map[string]any{"fields": fields}
	confirmed := &commands.BookingResult{Confirmation: &booking.Confirmation{
		BookingID:   "SABA-1001",
		CheckoutURL: "https://pay.example.test/SABA-1001",
		Status:      "PEND",
	}}

	s.Run("success: 201 with Location and the session cookie dropped", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "sess-1", fields).Return(confirmed, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, sessionCookie("sess-1"))

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Booking)
		s.Equal("SABA-1001", body.Booking.BookingID)
		s.Equal("https://pay.example.test/SABA-1001", body.Booking.InvoiceURL)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/SABA-1001"})
		s.Less(httptest.ExtractCookie(rec, cookie.SessionCookieName).MaxAge, 0)
	})

	s.Run("success: session_id in the body wins over the cookie", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("session_id", "sess-body"))
		s.mockCommands.EXPECT().Create(gomock.Any(), "sess-body", fields).Return(confirmed, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, body, sessionCookie("sess-1"))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("violations: 200 and the session is kept", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "sess-1", gomock.Any()).Return(&commands.BookingResult{
			Violations: []booking.Violation{{Code: booking.CodeFieldRequired, Field: "customer_phone", Message: "Phone is required"}},
		}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, sessionCookie("sess-1"))

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Nil(body.Booking)
		s.Require().Len(body.Violations, 1)
		s.Equal("customer_phone", body.Violations[0].Field)
		s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
	})

	s.Run("error: 400 without fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name         string
			err          error
			expectStatus int
			expectCode   string
		}{
			{name: "no session", err: commands.ErrNoSession, expectStatus: http.StatusNotFound, expectCode: "no_session"},
			{name: "empty cart", err: commands.ErrCartEmpty, expectStatus: http.StatusBadRequest, expectCode: "cart_empty"},
			{name: "expired cart", err: commands.ErrCartExpired, expectStatus: http.StatusGone, expectCode: "cart_expired"},
			{name: "duplicate submit", err: commands.ErrSubmissionInFlight, expectStatus: http.StatusConflict, expectCode: "in_flight"},
			{
				name:         "upstream rejection keeps its 4xx",
				err:          infra.WrapUpstreamErr(slog.Default(), http.StatusUnprocessableEntity, "booking rejected", errs.New("slot gone")),
				expectStatus: http.StatusUnprocessableEntity,
				expectCode:   "upstream",
			},
			{
				name:         "upstream 5xx becomes 502",
				err:          infra.WrapUpstreamErr(slog.Default(), http.StatusServiceUnavailable, "booking failed", errs.New("down")),
				expectStatus: http.StatusBadGateway,
				expectCode:   "upstream",
			},
			{name: "unexpected", err: errs.New("boom"), expectStatus: http.StatusInternalServerError, expectCode: "internal"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), "sess-1", gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, reqBody, sessionCookie("sess-1"))

				httptest.AssertErrorCode(s.T(), rec, tc.expectStatus, tc.expectCode)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	createdAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: ledger entry with lines", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "SABA-1001").Return(&queries.BookingView{
			BookingID:    "SABA-1001",
			Status:       "PEND",
			CustomerName: "Ana Diver",
			Total:        "$300.00",
			Lines: []queries.BookingLineView{
				{ItemID: 5, Name: "Classic 2-Tank Dive", StartDate: "20260212", EndDate: "20260212", Total: "$300.00", Role: "primary"},
			},
			CreatedAt: createdAt,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/SABA-1001", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SABA-1001", body.BookingID)
		s.Equal(createdAt.Unix(), body.CreatedAt)
		s.Require().Len(body.Lines, 1)
		s.Equal("primary", body.Lines[0].Role)
	})

	s.Run("error: unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), "nope").
			Return(nil, infra.WrapErr(slog.Default(), infra.KindNotFound, "booking not found", errs.New("no rows")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/nope", nil)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})
}
