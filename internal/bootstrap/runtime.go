// Package bootstrap prepares the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"simpleadvert/internal/cache"
	"simpleadvert/internal/config"
	"simpleadvert/internal/database"
	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitRuntime connects to DB and Redis and makes sure the configured superuser exists.
// The Redis client is nil when REDIS_URL is unset or unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := EnsureSuperuser(ctx, repository.NewUserRepository(db), cfg.SuperuserEmail, cfg.SuperuserPassword); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap superuser: %w", err)
	}

	return db, cache.Connect(ctx, cfg.RedisURL), nil
}

// EnsureSuperuser creates the account for email with superuser rights, or grants the
// rights to an existing account. An existing password is never overwritten.
// An empty email disables the step.
func EnsureSuperuser(ctx context.Context, users repository.UserRepository, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.IsSuperuser {
			return nil
		}
		log.Printf("Granting superuser rights to %s", email)
		return users.SetSuperuser(ctx, email, true)
	case models.ErrorCode(err) != models.CodeNotFound:
		return err
	}

	if password == "" {
		return errors.New("SUPERUSER_PASSWORD must be set to create the superuser")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash superuser password: %w", err)
	}

	log.Printf("Creating superuser %s", email)
	return users.Create(ctx, &models.User{
		Email:       email,
		Password:    string(hashed),
		IsActive:    true,
		IsSuperuser: true,
	})
}
