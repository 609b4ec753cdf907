package server

import (
	"net/http"

	"estatehub/internal/middleware"
	"estatehub/internal/modules/admin"
	"estatehub/internal/modules/auth"
	"estatehub/internal/modules/booking"
	"estatehub/internal/modules/catalog"
	"estatehub/internal/modules/contact"
	"estatehub/internal/modules/events"
	"estatehub/internal/modules/favorite"
	"estatehub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	JWT         *jwt.Service
	Users       middleware.UserLoader
	Limiter     *middleware.RateLimiter
	CORSOrigins []string
}

type Handlers struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Booking  *booking.Handler
	Favorite *favorite.Handler
	Admin    *admin.Handler
	Events   *events.Handler
	Contact  *contact.Handler
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorLogger(), gin.Logger(), middleware.CORS(cfg.CORSOrigins...))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limit := cfg.Limiter.Limit()

	v1 := r.Group("/api/v1")
	{
		// public
		h.Auth.RegisterPublicRoutes(v1, limit)
		h.Catalog.RegisterPublicRoutes(v1)
		h.Booking.RegisterPublicRoutes(v1)
		h.Contact.RegisterRoutes(v1, limit)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(cfg.JWT), middleware.ActiveUser(cfg.Users))
		{
			h.Auth.RegisterProtectedRoutes(protected)
			h.Catalog.RegisterProtectedRoutes(protected)
			h.Booking.RegisterRoutes(protected)
			h.Favorite.RegisterRoutes(protected)
		}

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.AdminOnly())
		{
			h.Admin.RegisterRoutes(adminGroup)
			h.Events.RegisterRoutes(adminGroup)
		}
	}

	return r
}
