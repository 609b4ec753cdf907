package main

import (
	"context"
	"log"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/database"
	"estatehub/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cleared, err := repository.NewUserRepository(db).ClearExpiredResetTokens(context.Background(), time.Now())
	if err != nil {
		log.Fatalf("cleanup reset tokens failed: %v", err)
	}

	log.Printf("auth cleanup completed: password_reset_tokens=%d", cleared)
}
