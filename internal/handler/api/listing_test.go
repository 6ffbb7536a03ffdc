//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/listing"
	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/pkg/ptr"
	"staybook/internal/testutil"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/httptest"
	"staybook/internal/testutil/mock/commandsmock"
	"staybook/internal/testutil/mock/queriesmock"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	actor        shared.Actor
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleHost}
	h := api.NewListingHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.actor)
	s.router.POST("/hosts/listings", auth, h.Create)
	s.router.GET("/hosts/listings", h.Search)
	s.router.GET("/hosts/listings/report", auth, h.Report)
	s.router.GET("/guests/listings", h.Available)
	s.router.GET("/admin/listings", auth, h.AdminList)
	s.router.GET("/listings/:id", h.Get)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

func onePage(views ...*queries.ListingView) *queries.Page[*queries.ListingView] {
	return queries.NewPage(queries.DefaultPageRequest(), len(views), views)
}

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/hosts/listings"

	b := builder.NewListingBuilder().With(func(l *builder.ListingBuilder) { l.HostID = s.actor.UserID })
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.actor, commands.CreateListingRequest{
				Capacity: b.Capacity,
				Country:  b.Country,
				City:     b.City,
				Price:    b.Price,
			}).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(b.Capacity, body.NoOfPeople)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/v1/listings/" + returnView.ID.String()})
	})

	s.Run("success: a free listing is allowed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("price", 0))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"noOfPeople below 1", testutil.Field("noOfPeople", 0)},
			{"missing country", testutil.Field("country", nil)},
			{"missing city", testutil.Field("city", nil)},
			{"missing price", testutil.Field("price", nil)},
			{"negative price", testutil.Field("price", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 403 for a guest", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrRoleNotPermitted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ListingHandlerTestSuite) TestSearch() {
	s.Run("success: query parameters become the filter", func() {
		view := builder.NewListingBuilder().WithRating(2, 4.5).BuildView()
		expected := listing.Filter{
			Country:     ptr.Of("spain"),
			City:        ptr.Of("Madrid"),
			MinCapacity: ptr.Of(2),
			MinPrice:    ptr.Of(50.0),
			MaxPrice:    ptr.Of(200.0),
			MinRating:   4,
			Sort:        listing.SortRating,
		}
		s.mockQueries.EXPECT().
			Search(gomock.Any(), expected, queries.PageRequest{Page: 2, Size: 5}).
			Return(queries.NewPage(queries.PageRequest{Page: 2, Size: 5}, 6, []*queries.ListingView{view}), nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/hosts/listings?country=spain&city=Madrid&noOfPeople=2&minPrice=50&maxPrice=200&minRating=4&sort=rating&page=2&limit=5",
			nil, "")

		var body resdto.ListingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.CurrentPage)
		s.Equal(2, body.TotalPages)
		s.Equal(6, body.TotalResults)
		s.Require().Len(body.Data, 1)
		s.Equal(4.5, body.Data[0].AverageRating)
	})

	s.Run("success: defaults apply without parameters", func() {
		s.mockQueries.EXPECT().
			Search(gomock.Any(), listing.Filter{}, queries.DefaultPageRequest()).
			Return(onePage(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/listings", nil, "")

		var body resdto.ListingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Data)
		s.NotNil(body.Data)
	})

	s.Run("error: 400 on bad paging", func() {
		for _, q := range []string{"page=0", "limit=0", "page=abc", "sort=price"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/listings?"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 from filter validation", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, listing.ErrInvalidPriceRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/listings?minPrice=10&maxPrice=5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, listing.ErrInvalidPriceRange.Error())
	})
}

func (s *ListingHandlerTestSuite) TestAvailable() {
	s.Run("success: stay is parsed as a half-open range", func() {
		stay, err := booking.ParseDateRange("2025-01-10", "2025-01-12")
		s.Require().NoError(err)
		expected := queries.AvailabilityQuery{
			Stay:   stay,
			Filter: listing.Filter{MinCapacity: ptr.Of(3)},
		}
		s.mockQueries.EXPECT().Available(gomock.Any(), expected, queries.DefaultPageRequest()).
			Return(onePage(builder.NewListingBuilder().BuildView()), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/guests/listings?dateFrom=2025-01-10&dateTo=2025-01-12&noOfPeople=3", nil, "")

		var body resdto.ListingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Data, 1)
	})

	s.Run("error: 400 on bad dates", func() {
		for _, q := range []string{
			"dateTo=2025-01-12",
			"dateFrom=2025-01-10",
			"dateFrom=2025-01-12&dateTo=2025-01-10",
			"dateFrom=2025-01-10&dateTo=2025-01-10",
			"dateFrom=10/01/2025&dateTo=2025-01-12",
		} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/listings?"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *ListingHandlerTestSuite) TestReport() {
	s.Run("success: passes the actor through", func() {
		s.mockQueries.EXPECT().
			Report(gomock.Any(), s.actor, listing.Filter{MinRating: 3.5}, queries.DefaultPageRequest()).
			Return(onePage(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/listings/report?minRating=3.5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hosts/listings/report", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *ListingHandlerTestSuite) TestAdminList() {
	s.Run("error: 403 is forwarded", func() {
		s.mockQueries.EXPECT().
			AdminList(gomock.Any(), s.actor, listing.Filter{Country: ptr.Of("Spain")}, queries.DefaultPageRequest()).
			Return(nil, shared.ErrRoleNotPermitted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/listings?country=Spain", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, shared.ErrRoleNotPermitted.Error())
	})
}

func (s *ListingHandlerTestSuite) TestGet() {
	view := builder.NewListingBuilder().BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+view.ID.String(), nil, "")

		var body resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.City, body.City)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, listing.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "listing not found")
	})
}
