package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"estatehub/internal/config"
	"estatehub/internal/database"
	"estatehub/internal/domain"
	"estatehub/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Usage: createadmin <email> <password> [name]
func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: createadmin <email> <password> [name]")
	}
	email := strings.TrimSpace(os.Args[1])
	password := os.Args[2]
	name := "Admin User"
	if len(os.Args) > 3 {
		name = strings.Join(os.Args[3:], " ")
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		admin := &domain.User{Name: name, Email: email, PasswordHash: string(hash), Role: domain.RoleAdmin}
		if err := users.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("admin created: id=%d email=%s name=%q", admin.ID, admin.Email, admin.Name)
	case err != nil:
		log.Fatalf("lookup user: %v", err)
	case existing.IsAdmin():
		log.Printf("admin already exists: email=%s", existing.Email)
	default:
		existing.Role = domain.RoleAdmin
		existing.PasswordHash = string(hash)
		existing.IsBlocked = false
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("user promoted to admin: id=%d email=%s name=%q", existing.ID, existing.Email, existing.Name)
	}
}
