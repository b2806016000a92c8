package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/esathi/engineersathi/internal/app/models"
	appRepos "github.com/esathi/engineersathi/internal/app/repositories"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/auth"
)

// CreateDefaultData creates the eight-semester catalog and the bootstrap
// admin account when absent. Individual failures are logged and joined so
// one bad row does not block the rest of the seed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminUsername, adminPassword string, lgr zerolog.Logger) error {
	semesterRepo := appRepos.NewSemesterRepository(dbPool)
	adminRepo := appRepos.NewAdminUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (semesters, admin account)...")
	var finalErr error

	for number := appModels.MinSemesterNumber; number <= appModels.MaxSemesterNumber; number++ {
		semester := &appModels.Semester{
			Number:   number,
			Name:     fmt.Sprintf("Semester %d", number),
			IsActive: true,
		}
		err := semesterRepo.Create(ctx, semester)
		if err != nil && !errors.Is(err, apperrors.ErrSemesterNumberExists) {
			lgr.Error().Err(err).Int("number", number).Msg("Error creating default semester")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if adminUsername != "" && adminPassword != "" {
		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			return errors.Join(finalErr, err)
		}

		adminUser := &appModels.AdminUser{Username: adminUsername, PasswordHash: hash}
		err = adminRepo.Create(ctx, adminUser)
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			lgr.Error().Err(err).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Str("username", adminUsername).Msg("Default admin account created")
		}
	} else {
		lgr.Warn().Msg("Admin credentials not configured, skipping default admin account")
	}

	return finalErr
}
