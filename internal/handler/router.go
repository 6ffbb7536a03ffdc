package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"staybook/internal/domain/user"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Listing *api.ListingHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Health  *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, registry *metrics.Registry,
	h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger, registry)
	setupRoutes(engine, registry, h, authMiddleware, limiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, registry *metrics.Registry) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(registry))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *metrics.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/metrics", gin.WrapH(registry.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authed := authMiddleware.RequireAuth()
	role := authMiddleware.RequireRole

	v1 := engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Handler()}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limiter.Handler()}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{authed}},
			})
		}

		hosts := v1.Group("/hosts")
		{
			addRoutes(hosts, []route{
				{Method: http.MethodPost, Path: "/listings", Handler: h.Listing.Create, Mw: []gin.HandlerFunc{authed, role(user.RoleHost)}},
				{Method: http.MethodGet, Path: "/listings", Handler: h.Listing.Search},
				{Method: http.MethodGet, Path: "/listings/report", Handler: h.Listing.Report, Mw: []gin.HandlerFunc{authed, role(user.RoleHost, user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/reviews/:listingId", Handler: h.Review.ListByListing},
			})
		}

		guests := v1.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodGet, Path: "/listings", Handler: h.Listing.Available},
				{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{authed, role(user.RoleGuest)}},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine, Mw: []gin.HandlerFunc{authed, role(user.RoleGuest)}},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get, Mw: []gin.HandlerFunc{authed, role(user.RoleGuest, user.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{authed, role(user.RoleGuest)}},
			})
		}

		admin := v1.Group("/admin")
		admin.Use(authed, role(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/listings", Handler: h.Listing.AdminList},
			})
		}

		addRoutes(v1, []route{
			{Method: http.MethodGet, Path: "/listings/:id", Handler: h.Listing.Get},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
