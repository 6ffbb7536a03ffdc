package middleware

import (
	"log/slog"
	"slices"

	"staybook/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers browsers must be able to read from API responses: Location on 201s and
// the request id for support tickets.
var requiredExposeHeaders = []string{"Location", "X-Request-ID"}

// NewCORSMiddleware builds the CORS policy. A "*" origin switches to allow-all
// and drops credentials, since browsers reject a wildcard with cookies anyway.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	for _, h := range requiredExposeHeaders {
		if !slices.Contains(corsCfg.ExposeHeaders, h) {
			corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, h)
		}
	}

	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		if corsCfg.AllowCredentials {
			slog.Warn("CORS wildcard origin configured, disabling credentials")
			corsCfg.AllowCredentials = false
		}
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
