//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"workhive/internal/handler/api"
	resdto "workhive/internal/handler/dto/response"
	"workhive/internal/infra"
	"workhive/internal/usecase/queries"
	"workhive/tests/common/httptest"
	queriesmock "workhive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WorkspaceHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockQueries      *queriesmock.MockWorkspaceQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
}

func (s *WorkspaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockWorkspaceQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	workspaceHandler := api.NewWorkspaceHandler(s.mockQueries)
	availabilityHandler := api.NewAvailabilityHandler(s.mockAvailability)

	s.router.GET("/workspaces/:id", workspaceHandler.Get)
	s.router.GET("/workspaces/:id/blocked-dates", availabilityHandler.BlockedDates)
	s.router.GET("/catalog", workspaceHandler.ListCatalog)
}

func (s *WorkspaceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWorkspaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkspaceHandlerTestSuite))
}

func (s *WorkspaceHandlerTestSuite) TestGet() {
	wsID := uuid.New()
	view := &queries.WorkspaceView{
		ID:        wsID,
		Name:      "WorkHive Quận 1",
		Address:   "12 Nguyễn Huệ",
		OpenTime:  "08:00",
		CloseTime: "22:00",
		Pricing: []queries.PricingView{
			{Category: "Giờ", Price: 50000},
			{Category: "Ngày", Price: 300000},
		},
		CreatedAt: time.Now(),
	}

	s.Run("success: returns workspace with pricing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), wsID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/workspaces/"+wsID.String(), nil, "")

		var resp resdto.WorkspaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.Name, resp.Name)
		s.Len(resp.Pricing, 2)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/workspaces/not-a-uuid", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: unknown workspace returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), wsID).
			Return(nil, infra.WrapRepoErr("workspace not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/workspaces/"+wsID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Workspace not found")
	})
}

func (s *WorkspaceHandlerTestSuite) TestBlockedDates() {
	wsID := uuid.New()

	s.Run("success: returns sorted day keys", func() {
		view := &queries.BlockedDatesView{WorkspaceID: wsID, Dates: []string{"2024-06-01", "2024-06-02"}}
		s.mockAvailability.EXPECT().BlockedDates(gomock.Any(), wsID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/workspaces/"+wsID.String()+"/blocked-dates", nil, "")

		var resp resdto.BlockedDatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal([]string{"2024-06-01", "2024-06-02"}, resp.Dates)
	})

	s.Run("error: store failure returns 500", func() {
		s.mockAvailability.EXPECT().BlockedDates(gomock.Any(), wsID).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/workspaces/"+wsID.String()+"/blocked-dates", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *WorkspaceHandlerTestSuite) TestListCatalog() {
	s.Run("success: lists beverages", func() {
		items := []*queries.CatalogItemView{
			{ID: uuid.New(), Name: "Cà phê sữa", Price: 10000, Kind: "beverage"},
		}
		s.mockQueries.EXPECT().ListCatalog(gomock.Any(), "beverage").Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?kind=beverage", nil, "")

		var resp []resdto.CatalogItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("error: unknown kind returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/catalog?kind=snacks", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
