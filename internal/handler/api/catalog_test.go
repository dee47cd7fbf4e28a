//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"saba-booking/internal/domain/catalog"
	"saba-booking/internal/handler/api"
	resdto "saba-booking/internal/handler/dto/response"
	"saba-booking/tests/common/httptest"
	queriesmock "saba-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/api/items", s.handler.Items)
	s.router.GET("/api/items/:id", s.handler.Item)
	s.router.GET("/api/items/:id/calendar", s.handler.Calendar)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestItems() {
	s.Run("success: dates and params become a rated query", func() {
		s.mockQueries.EXPECT().Items(gomock.Any(), catalog.ItemQuery{
			CategoryID: 2,
			StartDate:  "20260212",
			EndDate:    "20260212",
			Params:     map[string]int{"diver2026rate": 2},
		}).Return([]catalog.Item{{
			ID:   catalog.Classic2Tank,
			Name: "Classic 2-Tank Dive",
			Rate: &catalog.Rate{Status: catalog.RateAvailable, Available: 8, Token: "slip-1", Total: "$300.00"},
		}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/items?category_id=2&start_date=20260212&param[diver2026rate]=2", nil)

		var body struct {
			Items []resdto.ItemResponse `json:"items"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Require().NotNil(body.Items[0].Rate)
		s.Equal("slip-1", body.Items[0].Rate.Slip)
	})

	s.Run("error: negative quantity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?param[diver2026rate]=-1", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "quantity")
	})

	s.Run("error: inverted dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items?start_date=20260214&end_date=20260212", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_date")
	})
}

func (s *CatalogHandlerTestSuite) TestItem() {
	s.Run("success: unrated without params", func() {
		s.mockQueries.EXPECT().Item(gomock.Any(), catalog.ItemID(5), (*catalog.ItemQuery)(nil)).
			Return(&catalog.Item{ID: 5, Name: "Classic 2-Tank Dive"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/5", nil)

		var body resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.ID)
		s.Nil(body.Rate)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/items/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid item id")
	})
}

func (s *CatalogHandlerTestSuite) TestCalendar() {
	s.Run("error: inverted span", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/items/5/calendar?start_date=20260301&end_date=20260201", nil)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_date")
	})
}
