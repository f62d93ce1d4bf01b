// Command seed creates the initial admin account so the API is usable before
// any user exists. Credentials come from SEED_USERNAME / SEED_EMAIL /
// SEED_PASSWORD; running it twice is harmless.
package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/infrastructure/config"
	"github.com/esdoorn/practice-api/internal/infrastructure/db/postgres"
	"github.com/esdoorn/practice-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	username := os.Getenv("SEED_USERNAME")
	password := os.Getenv("SEED_PASSWORD")
	email := os.Getenv("SEED_EMAIL")
	if username == "" || password == "" {
		log.Fatal().Msg("SEED_USERNAME and SEED_PASSWORD must be set")
	}

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	users := postgres.NewUserRepository(db)

	if existing, err := users.FindByUsername(ctx, username); err == nil {
		log.Warn().Str("username", username).Int64("id", existing.ID).Msg("user already exists, nothing to do")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("failed to check for existing user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	created, err := users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create user")
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Str("role", created.Role).Msg("admin user created")
}
