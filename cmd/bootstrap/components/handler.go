package components

import (
	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		NewHealthHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(auth *api.AuthHandler, listing *api.ListingHandler, booking *api.BookingHandler,
			review *api.ReviewHandler, health *api.HealthHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Listing: listing, Booking: booking, Review: review, Health: health}
		},
	),
	fx.Invoke(handler.NewRouter),
)

type healthChecks struct {
	fx.In

	Checks []HealthCheck `group:"health"`
}

// NewHealthHandler drops the empty entries left by disabled integrations.
func NewHealthHandler(in healthChecks) *api.HealthHandler {
	m := make(map[string]api.Pinger, len(in.Checks))
	for _, c := range in.Checks {
		if c.Pinger != nil {
			m[c.Name] = c.Pinger
		}
	}
	return api.NewHealthHandler(m)
}
