package infra

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clubpuntos/internal/config"
	"clubpuntos/internal/models/db_models"
	"clubpuntos/pkg/logger"
	"clubpuntos/pkg/utils"
)

// InitPostgresql opens the single gorm handle the whole app shares.
// The handle is passed down through fx providers, never read from a
// package global.
func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("error connecting to database")
		return nil, err
	}

	if err := db.AutoMigrate(
		&db_models.Admin{},
		&db_models.Member{},
		&db_models.LedgerEntry{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

func ClosePostgresql(db *gorm.DB) {
	log := logger.Get()
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("database connection closed")
	}
}

// SeedAdmin provisions the bootstrap administrator when none exists.
// Admin accounts are otherwise created out-of-band.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&db_models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &db_models.Admin{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: hash,
		Role:         "ADM",
		Status:       db_models.StatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	log := logger.Get()
	log.Info().Str("email", cfg.AdminEmail).Msg("bootstrap admin created")
	return nil
}
