package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPAddr         = ":8080"
	defaultJWTTTL           = "168h"
	defaultPasswordResetTTL = "1h"
	defaultCatalogCacheTTL  = "5m"
	defaultJWTSecret        = "change-me-jwt-secret"
	defaultGoogleJWKSURL    = "https://www.googleapis.com/oauth2/v3/certs"
	defaultSMTPHost         = "smtp.gmail.com"
	defaultSMTPPort         = "587"
	defaultRateLimitPerMin  = "20"
	defaultDevConsoleMailer = "true"
	defaultBookingTimeZone  = "UTC"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	RedisURL    string

	JWTSecret        string
	JWTTTL           time.Duration
	PasswordResetTTL time.Duration

	GoogleClientID string
	GoogleJWKSURL  string

	CatalogCacheTTL time.Duration

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	ContactEmail     string
	DevConsoleMailer bool

	RateLimitPerMinute int
	CORSAllowedOrigins []string

	BookingLocation *time.Location
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.GoogleClientID = strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_ID"))
	cfg.GoogleJWKSURL = strings.TrimSpace(getEnv("GOOGLE_JWKS_URL", defaultGoogleJWKSURL))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.PasswordResetTTL, err = parseDurationEnv("PASSWORD_RESET_TTL", defaultPasswordResetTTL)
	if err != nil {
		return nil, err
	}

	cfg.CatalogCacheTTL, err = parseDurationEnv("CATALOG_CACHE_TTL", defaultCatalogCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg.SMTPHost = strings.TrimSpace(getEnv("SMTP_HOST", defaultSMTPHost))
	cfg.SMTPPort, err = parseIntEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return nil, err
	}
	cfg.SMTPUser = strings.TrimSpace(getEnv("SMTP_USER", os.Getenv("CONTACT_EMAIL")))
	cfg.SMTPPass = os.Getenv("SMTP_PASS")
	cfg.ContactEmail = strings.TrimSpace(getEnv("CONTACT_EMAIL", os.Getenv("SMTP_USER")))
	cfg.DevConsoleMailer = parseBoolEnv("DEV_CONSOLE_MAILER", defaultDevConsoleMailer)

	cfg.RateLimitPerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", defaultRateLimitPerMin)
	if err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	tz := strings.TrimSpace(getEnv("BOOKING_TIMEZONE", defaultBookingTimeZone))
	cfg.BookingLocation, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE value %q: %w", tz, err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.GoogleClientID == "" {
		log.Printf("config warning: GOOGLE_CLIENT_ID is not set, google login disabled")
	}
	log.Printf("config loaded: env=%s addr=%s redis=%t smtp_host=%s", cfg.AppEnv, cfg.HTTPAddr, cfg.RedisURL != "", cfg.SMTPHost)

	return cfg, nil
}

// MailConfigured reports whether outgoing SMTP mail can be sent.
func (c *Config) MailConfigured() bool {
	return c.ContactEmail != "" && c.SMTPUser != "" && c.SMTPPass != ""
}

func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.PasswordResetTTL <= 0 {
		return fmt.Errorf("PASSWORD_RESET_TTL must be > 0")
	}
	if cfg.CatalogCacheTTL <= 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be > 0")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be a valid port")
	}
	if cfg.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.DevConsoleMailer {
			return fmt.Errorf("in prod/release DEV_CONSOLE_MAILER must be false")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
