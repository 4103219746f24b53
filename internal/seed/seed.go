package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kerem/campusdesk/internal/app/models"
	appRepos "github.com/kerem/campusdesk/internal/app/repositories"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
	pkgAuth "github.com/kerem/campusdesk/internal/pkg/auth"
)

// Default admin credentials, overridable through the environment. The
// password should be changed after the first login.
const (
	defaultAdminEmail    = "admin@campusdesk.local"
	defaultAdminPassword = "changeme123"
)

// CreateDefaultAdmin ensures at least one admin account exists so the
// admin-only endpoints are reachable on a fresh deployment.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	email := os.Getenv("CAMPUSDESK_ADMIN_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}
	password := os.Getenv("CAMPUSDESK_ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	hashed, err := pkgAuth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = userRepo.CreateUser(ctx, &appModels.User{
		Email:    email,
		Password: hashed,
		Role:     appModels.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", email).Msg("Default admin account already exists")
			return nil
		}
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
