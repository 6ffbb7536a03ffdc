package api

import (
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Hosts publish a listing; the host is the caller.
// @Tags hosts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Header 201 {string} Location "URL of the new listing"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/v1/hosts/listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, httperr.MsgUnauthorized, nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBinding(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondCreated(c, view)
}

// @Summary Search listings
// @Tags hosts
// @Produce json
// @Param country query string false "Country (case-insensitive)"
// @Param city query string false "City (case-insensitive)"
// @Param noOfPeople query int false "Minimum capacity"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minRating query number false "Minimum average rating"
// @Param sort query string false "rating or created"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/hosts/listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var q reqdto.ListingSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPage(c)(h.q.Search(c.Request.Context(), q.ToFilter(), page))
}

// @Summary Available listings
// @Description Listings free for the whole stay [dateFrom, dateTo).
// @Tags guests
// @Produce json
// @Param dateFrom query string true "YYYY-MM-DD"
// @Param dateTo query string true "YYYY-MM-DD, checkout day"
// @Param noOfPeople query int false "Minimum capacity"
// @Param country query string false "Country"
// @Param city query string false "City"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/guests/listings [get]
func (h *ListingHandler) Available(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	avail, err := q.ToQuery()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPage(c)(h.q.Available(c.Request.Context(), avail, page))
}

// @Summary Rating report
// @Description Listings ordered by rating; hosts only see their own.
// @Tags hosts
// @Produce json
// @Security BearerAuth
// @Param minRating query number false "Minimum average rating"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/v1/hosts/listings/report [get]
func (h *ListingHandler) Report(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, httperr.MsgUnauthorized, nil)
		return
	}
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPage(c)(h.q.Report(c.Request.Context(), actor, q.ToFilter(), page))
}

// @Summary Admin listing overview
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param country query string false "Country"
// @Param city query string false "City"
// @Param page query int false "Page, default 1"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} resdto.ListingPageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/v1/admin/listings [get]
func (h *ListingHandler) AdminList(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, httperr.MsgUnauthorized, nil)
		return
	}
	var q reqdto.AdminListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBinding(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPage(c)(h.q.AdminList(c.Request.Context(), actor, q.ToFilter(), page))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromListingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ListingHandler) respondCreated(c *gin.Context, view *queries.ListingView) {
	res, err := resdto.FromListingView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", "/api/v1/listings/"+view.ID.String())
	c.JSON(http.StatusCreated, res)
}

// respondPage adapts a (page, error) query result into the JSON response.
func (h *ListingHandler) respondPage(c *gin.Context) func(*queries.Page[*queries.ListingView], error) {
	return func(p *queries.Page[*queries.ListingView], err error) {
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		res, err := resdto.FromListingPage(p)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
