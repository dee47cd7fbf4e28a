//go:build unit

package api_test

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"saba-booking/internal/handler/api"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/infra"
	"saba-booking/internal/pkg/config"
	"saba-booking/internal/pkg/cookie"
	"saba-booking/internal/pkg/jwt"
	"saba-booking/internal/usecase/commands"
	"saba-booking/tests/common/builder"
	"saba-booking/tests/common/httptest"
	commandsmock "saba-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockSessions *commandsmock.MockSessionSync
	resume       *jwt.Service
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = commandsmock.NewMockSessionSync(s.mockCtrl)
	s.resume = jwt.NewService(cfg.Resume.Secret, time.Hour)
	s.handler = api.NewCartHandler(s.mockSessions, s.resume, cfg.Cookie, cfg.Resume)

	g := s.router.Group("/api", middleware.NewSessionMiddleware(s.resume, slog.Default()).ResolveSession())
	g.GET("/cart", s.handler.Get)
	g.POST("/session", s.handler.Session)
	g.DELETE("/cart/units/:token", s.handler.RemoveUnit)
	g.POST("/cart/clear", s.handler.Clear)
	g.POST("/cart/share", s.handler.Share)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func sessionCookie(id string) []*http.Cookie {
	return []*http.Cookie{{Name: cookie.SessionCookieName, Value: id}}
}

func cartView(sessionID string) *commands.CartView {
	dive := builder.NewLineItemBuilder().WithToken("tok-dive").Build()
	return &commands.CartView{
		SessionID: sessionID,
		UnitCount: 1,
		Total:     dive.Total,
		Units:     []commands.CartUnit{{Primary: dive, LineTotal: dive.Total}},
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: session from cookie", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-cookie").Return(cartView("sess-cookie"), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart", nil, sessionCookie("sess-cookie"))

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.UnitCount)
		s.Require().Len(body.Units, 1)
		s.Equal("tok-dive", body.Units[0].PrimaryToken)
	})

	s.Run("success: query session wins over cookie and is adopted", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-query").Return(cartView("sess-query"), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart?session_id=sess-query", nil, sessionCookie("sess-cookie"))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("sess-query", c.Value)
	})

	s.Run("success: resume token opens the shared session", func() {
		token, _, err := s.resume.GenerateToken("sess-shared")
		s.Require().NoError(err)
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-shared").Return(cartView("sess-shared"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cart?resume="+url.QueryEscape(token), nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("sess-shared", httptest.ExtractCookie(rec, cookie.SessionCookieName).Value)
	})

	s.Run("success: expired session clears the cookie", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-old").
			Return(&commands.CartView{Empty: true, Expired: true}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart", nil, sessionCookie("sess-old"))

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Expired)
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})

	s.Run("error: reservation API rate limit maps to 429 with Retry-After", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-1").
			Return(nil, infra.WrapRateLimitedErr(slog.Default(), 7*time.Second, "rate limited"))

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/cart", nil, sessionCookie("sess-1"))

		httptest.AssertErrorCode(s.T(), rec, http.StatusTooManyRequests, "rate_limited")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "7"})
	})
}

// ================================================================================
// TestSession
// ================================================================================

func (s *CartHandlerTestSuite) TestSession() {
	s.Run("success: adds rated slips", func() {
		s.mockSessions.EXPECT().AddTokens(gomock.Any(), "", []string{"slip-1"}).Return(cartView("sess-new"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session", map[string]any{"tokens": []string{"slip-1"}})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Equal("sess-new", httptest.ExtractCookie(rec, cookie.SessionCookieName).Value)
	})

	s.Run("success: alters quantities", func() {
		s.mockSessions.EXPECT().Alter(gomock.Any(), "sess-1", map[string]int{"tok-dive": 0}).Return(cartView("sess-1"), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session",
			map[string]any{"alter": map[string]int{"tok-dive": 0}}, sessionCookie("sess-1"))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without tokens or alter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: expired session on alter maps to 410", func() {
		s.mockSessions.EXPECT().Alter(gomock.Any(), "sess-old", gomock.Any()).Return(nil, commands.ErrCartExpired)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/session",
			map[string]any{"alter": map[string]int{"tok": 1}}, sessionCookie("sess-old"))

		httptest.AssertErrorCode(s.T(), rec, http.StatusGone, "cart_expired")
	})
}

// ================================================================================
// TestRemoveUnitAndClear
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveUnitAndClear() {
	s.Run("remove: unknown unit maps to 404", func() {
		s.mockSessions.EXPECT().RemoveUnit(gomock.Any(), "sess-1", "tok-x").Return(nil, commands.ErrUnitNotFound)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodDelete, "/api/cart/units/tok-x", nil, sessionCookie("sess-1"))

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "unit_not_found")
	})

	s.Run("clear: drops the session cookie", func() {
		s.mockSessions.EXPECT().Clear(gomock.Any(), "sess-1").Return(&commands.CartView{Empty: true}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/cart/clear", nil, sessionCookie("sess-1"))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Less(httptest.ExtractCookie(rec, cookie.SessionCookieName).MaxAge, 0)
	})
}

// ================================================================================
// TestShare
// ================================================================================

func (s *CartHandlerTestSuite) TestShare() {
	s.Run("success: link carries a token for the session", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-1").Return(cartView("sess-1"), nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/cart/share", nil, sessionCookie("sess-1"))

		var body resdto.ShareResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(strings.HasPrefix(body.URL, "http://localhost:3000/cart?resume="))
		claims, err := s.resume.ValidateToken(body.Token)
		s.Require().NoError(err)
		s.Equal("sess-1", claims.SessionID)
	})

	s.Run("error: no session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/cart/share", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "no_session")
	})

	s.Run("error: empty cart", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-1").Return(&commands.CartView{SessionID: "sess-1", Empty: true}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/cart/share", nil, sessionCookie("sess-1"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "empty")
	})

	s.Run("error: expired cart", func() {
		s.mockSessions.EXPECT().Refresh(gomock.Any(), "sess-1").Return(&commands.CartView{Empty: true, Expired: true}, nil)

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/cart/share", nil, sessionCookie("sess-1"))

		httptest.AssertErrorCode(s.T(), rec, http.StatusGone, "cart_expired")
	})
}
