package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gccoffee/member-api/internal/config"
	"github.com/gccoffee/member-api/internal/handler"
	middlewarepkg "github.com/gccoffee/member-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Members *handler.MemberHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	var registerLimit config.RateLimitConfig
	if cfg != nil {
		registerLimit = cfg.RateLimitRegister
	}

	members := e.Group("/api/v1/members")
	members.POST("", handlers.Members.Register, middlewarepkg.RateLimiter(registerLimit))
	members.GET("/admin/:memberId", handlers.Members.List)
	members.GET("/:memberId", handlers.Members.Read)
	members.PUT("/:memberId", handlers.Members.Modify)
	members.DELETE("/:memberId", handlers.Members.Remove)
}
