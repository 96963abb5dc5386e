package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	appRepos "github.com/mwss/sevaportal/internal/app/repositories"
	"github.com/mwss/sevaportal/internal/config"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData seeds the records a fresh deployment needs to be
// usable: one admin account, the four fee tiers, the public menu and the
// site settings the frontend reads. Every step is idempotent.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)
	settingsRepo := appRepos.NewSettingsRepository(dbPool)
	contentRepo := appRepos.NewContentRepository(dbPool)

	var finalErr error

	if err := seedAdmin(ctx, adminRepo, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedFeeStructures(ctx, settingsRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedMenuItems(ctx, contentRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSettings(ctx, settingsRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, repo *appRepos.AdminRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := cfg.Seed.AdminEmail
	if email == "" {
		return nil
	}

	exists, err := repo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		return err
	}
	if exists {
		return nil
	}

	password := cfg.Seed.AdminPassword
	if password == "" {
		password = "admin123"
		lgr.Warn().Str("email", email).Msg("Seeding default admin with default password, change it immediately")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &models.Admin{
		Email:    email,
		Password: hashed,
		Name:     "MWSS Admin",
	}
	if err := repo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin created")
	return nil
}

func seedFeeStructures(ctx context.Context, repo *appRepos.SettingsRepository, lgr zerolog.Logger) error {
	count, err := repo.FeeStructureCount(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting fee structures")
		return err
	}
	if count > 0 {
		return nil
	}

	fees := []*models.FeeStructure{
		{Name: "Village Level", NameHindi: strPtr("ग्राम स्तर"), Level: models.FeeLevelVillage, Amount: models.FeeAmountFor(models.FeeLevelVillage), IsActive: true},
		{Name: "Block Level", NameHindi: strPtr("खंड स्तर"), Level: models.FeeLevelBlock, Amount: models.FeeAmountFor(models.FeeLevelBlock), IsActive: true},
		{Name: "District Level", NameHindi: strPtr("जिला स्तर"), Level: models.FeeLevelDistrict, Amount: models.FeeAmountFor(models.FeeLevelDistrict), IsActive: true},
		{Name: "Haryana Level", NameHindi: strPtr("हरियाणा स्तर"), Level: models.FeeLevelHaryana, Amount: models.FeeAmountFor(models.FeeLevelHaryana), IsActive: true},
	}

	var finalErr error
	for _, fee := range fees {
		if err := repo.CreateFeeStructure(ctx, fee); err != nil {
			lgr.Error().Err(err).Str("level", string(fee.Level)).Msg("Error creating fee structure")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(fees)).Msg("Default fee structures created")
	}
	return finalErr
}

func seedMenuItems(ctx context.Context, repo *appRepos.ContentRepository, lgr zerolog.Logger) error {
	existing, err := repo.GetMenuItems(ctx, false)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing menu items")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	items := []*models.MenuItem{
		{Title: "Home", TitleHindi: strPtr("होम"), Path: "/", IconKey: "home", Order: 1, IsActive: true, Group: "main"},
		{Title: "About Us", TitleHindi: strPtr("हमारे बारे में"), Path: "/about", IconKey: "info", Order: 2, IsActive: true, Group: "main"},
		{Title: "Student Registration", TitleHindi: strPtr("छात्र पंजीकरण"), Path: "/register", IconKey: "user-plus", Order: 3, IsActive: true, Group: "main"},
		{Title: "Membership", TitleHindi: strPtr("सदस्यता"), Path: "/membership", IconKey: "users", Order: 4, IsActive: true, Group: "main"},
		{Title: "Results", TitleHindi: strPtr("परिणाम"), Path: "/results", IconKey: "award", Order: 5, IsActive: true, Group: "main"},
		{Title: "Admit Card", TitleHindi: strPtr("प्रवेश पत्र"), Path: "/admit-card", IconKey: "file-text", Order: 6, IsActive: true, Group: "main"},
		{Title: "Contact", TitleHindi: strPtr("संपर्क करें"), Path: "/contact", IconKey: "phone", Order: 7, IsActive: true, Group: "main"},
	}

	var finalErr error
	for _, item := range items {
		if err := repo.CreateMenuItem(ctx, item); err != nil {
			lgr.Error().Err(err).Str("path", item.Path).Msg("Error creating menu item")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(items)).Msg("Default menu created")
	}
	return finalErr
}

func seedSettings(ctx context.Context, repo *appRepos.SettingsRepository, lgr zerolog.Logger) error {
	settings := []*models.AdminSetting{
		{Key: "site_name", Value: "Maharishi Walmiki Shaikshanik Sanstha", Label: "Site Name", LabelHindi: strPtr("साइट का नाम"), Type: models.SettingString, Category: "general"},
		{Key: "registration_open", Value: "true", Label: "Student Registration Open", Type: models.SettingBoolean, Category: "registration"},
		{Key: "membership_open", Value: "true", Label: "Membership Registration Open", Type: models.SettingBoolean, Category: "membership"},
		{Key: "contact_email", Value: "contact@mwss.org.in", Label: "Contact Email", Type: models.SettingString, Category: "contact"},
		{Key: "contact_phone", Value: "", Label: "Contact Phone", Type: models.SettingString, Category: "contact"},
		{Key: "exam_notice", Value: "", Label: "Exam Notice", LabelHindi: strPtr("परीक्षा सूचना"), Type: models.SettingString, Category: "exam"},
	}

	var finalErr error
	for _, setting := range settings {
		if err := repo.UpsertSetting(ctx, setting); err != nil {
			lgr.Error().Err(err).Str("key", setting.Key).Msg("Error upserting setting")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
