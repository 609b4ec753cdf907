package server

import (
	"net/http"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/middleware"
	"estatehub/internal/modules/admin"
	"estatehub/internal/modules/auth"
	"estatehub/internal/modules/booking"
	"estatehub/internal/modules/catalog"
	"estatehub/internal/modules/contact"
	"estatehub/internal/modules/events"
	"estatehub/internal/modules/favorite"
	"estatehub/internal/pkg/jwt"
	"estatehub/internal/pkg/mailer"
	"estatehub/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options carries the optional collaborators that cmd/api builds from config.
// Any of them may be nil.
type Options struct {
	Cache  catalog.Cache
	Google auth.GoogleVerifier
	Mailer mailer.Mailer
}

// App is the wired HTTP application.
type App struct {
	Router *gin.Engine
	Hub    *events.Hub
}

func New(cfg *config.Config, db *gorm.DB, opts Options) *App {
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := events.NewHub()

	catalogService := catalog.NewService(propertyRepo, userRepo, opts.Cache, cfg.CatalogCacheTTL)

	handlers := Handlers{
		Auth:     auth.NewHandler(auth.NewService(userRepo, jwtService, opts.Google, opts.Mailer, cfg.PasswordResetTTL, !cfg.IsProd())),
		Catalog:  catalog.NewHandler(catalogService),
		Booking:  booking.NewHandler(booking.NewService(bookingRepo, userRepo, propertyRepo, hub, cfg.BookingLocation)),
		Favorite: favorite.NewHandler(favorite.NewService(favoriteRepo, userRepo, propertyRepo)),
		Admin:    admin.NewHandler(admin.NewService(userRepo, propertyRepo, bookingRepo, catalogService)),
		Events:   events.NewHandler(hub),
		Contact:  contact.NewHandler(contact.NewService(opts.Mailer, cfg.ContactEmail)),
	}

	router := NewRouter(RouterConfig{
		JWT:         jwtService,
		Users:       userRepo,
		Limiter:     middleware.NewRateLimiter(cfg.RateLimitPerMinute),
		CORSOrigins: cfg.CORSAllowedOrigins,
	}, handlers)

	return &App{Router: router, Hub: hub}
}

// HTTPServer wraps the router with the timeouts used in every environment.
// WriteTimeout stays zero so admin websocket streams are not cut off.
func (a *App) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
