package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"estatehub/internal/cache"
	"estatehub/internal/config"
	"estatehub/internal/database"
	"estatehub/internal/modules/auth"
	"estatehub/internal/pkg/mailer"
	"estatehub/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var opts server.Options

	if cfg.RedisURL != "" {
		rc, err := cache.Connect(ctx, cfg.RedisURL, "estatehub:")
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rc.Close()
		opts.Cache = rc
		log.Printf("catalog cache enabled ttl=%s", cfg.CatalogCacheTTL)
	}

	if cfg.GoogleClientID != "" {
		verifier, err := auth.NewGoogleVerifier(ctx, cfg.GoogleClientID, cfg.GoogleJWKSURL)
		if err != nil {
			log.Fatalf("google jwks: %v", err)
		}
		opts.Google = verifier
	}

	switch {
	case cfg.MailConfigured():
		opts.Mailer = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUser)
	case cfg.DevConsoleMailer:
		opts.Mailer = mailer.NewDevConsoleMailer(true)
		if cfg.ContactEmail == "" {
			cfg.ContactEmail = "contact@localhost"
		}
	default:
		log.Printf("config warning: SMTP is not configured, contact form and reset mails disabled")
	}

	app := server.New(cfg, db, opts)
	srv := app.HTTPServer(cfg.HTTPAddr)

	go func() {
		log.Printf("server listening addr=%s env=%s", cfg.HTTPAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	app.Hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
