// Promote nâng một user lên role chỉ định từ command line - escape hatch
// khi hệ thống không còn admin nào login được.
//
// Usage: promote -email user@example.com [-role admin]
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"gogarvis-backend/internal/config"
	"gogarvis-backend/internal/domains/user"
	userRepo "gogarvis-backend/internal/domains/user/repository"
	"gogarvis-backend/internal/infrastructure/database"
	"gogarvis-backend/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email of the user to promote")
	role := flag.String("role", string(user.RoleAdmin), "target role (admin, editor, viewer)")
	flag.Parse()

	if *email == "" {
		log.Fatal("usage: promote -email user@example.com [-role admin]")
	}
	targetRole := user.Role(*role)
	if !targetRole.IsValid() {
		log.Fatalf("invalid role %q (valid: admin, editor, viewer)", *role)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.App.Environment)

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	repo := userRepo.NewPostgresRepository(db.Pool)

	u, err := repo.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("failed to find user %q: %v", *email, err)
	}
	if u.Role == targetRole {
		log.Printf("%s already has role %s, nothing to do", u.Email, u.Role)
		return
	}

	if err := repo.UpdateRole(ctx, u.UserID, targetRole); err != nil {
		log.Fatalf("failed to update role: %v", err)
	}
	log.Printf("%s: %s -> %s", u.Email, u.Role, targetRole)
}
