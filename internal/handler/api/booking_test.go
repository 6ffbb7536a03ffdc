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
	"staybook/internal/testutil"
	"staybook/internal/testutil/builder"
	"staybook/internal/testutil/httptest"
	"staybook/internal/testutil/mock/commandsmock"
	"staybook/internal/testutil/mock/queriesmock"
	"staybook/internal/usecase/queries"
	"staybook/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = shared.Actor{UserID: uuid.New(), Role: user.RoleGuest}
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(s.actor)
	s.router.POST("/guests/bookings", auth, h.Create)
	s.router.GET("/guests/bookings", auth, h.ListMine)
	s.router.GET("/guests/bookings/:id", auth, h.Get)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/guests/bookings"

	b := builder.NewBookingBuilder().WithDates("2025-03-01", "2025-03-04")
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 with the new booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, b.BuildCommand()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("2025-03-01", body.DateFrom)
		s.Equal("2025-03-04", body.DateTo)
		s.Equal(3, body.Nights)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location": "/api/v1/guests/bookings/" + returnView.ID.String(),
		})
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing listingId", testutil.Field("listingId", nil)},
			{"missing dateFrom", testutil.Field("dateFrom", nil)},
			{"missing dateTo", testutil.Field("dateTo", nil)},
			{"missing namesOfPeople", testutil.Field("namesOfPeople", nil)},
			{"empty namesOfPeople", testutil.Field("namesOfPeople", []string{})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: outcome kinds map to statuses", func() {
		cases := []struct {
			name string
			err  error
			code int
		}{
			{"overlap is 409", booking.ErrOverlappingBooking, http.StatusConflict},
			{"bad range is 400", booking.ErrInvalidDateRange, http.StatusBadRequest},
			{"over capacity is 400", booking.ErrOverCapacity, http.StatusBadRequest},
			{"wrong role is 403", shared.ErrRoleNotPermitted, http.StatusForbidden},
			{"unknown listing is 404", listing.ErrListingNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.code, tc.err.Error())
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the actor's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildView(),
			builder.NewBookingBuilder().WithDates("2025-05-01", "2025-05-02").BuildView(),
		}
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/bookings", nil, "bearer-token")

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(views[1].ID, body[1].ID)
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/bookings", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/guests/bookings/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ListingID, body.ListingID)
	})

	s.Run("error: 404 for someone else's booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/guests/bookings/123", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
