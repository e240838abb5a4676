package main

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/joho/godotenv"

	"clubpuntos/internal/config"
	"clubpuntos/internal/importer"
	"clubpuntos/internal/infra"
	"clubpuntos/internal/repositories"
	"clubpuntos/pkg/logger"
	"clubpuntos/pkg/utils"
)

// Offline batch loader for historical CSV dumps. Inserts ignore rows
// whose ids already exist, so reruns are harmless.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: importer <dump.csv>")
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Str("path", os.Args[1]).Msg("failed to open dump")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // mixed schemas, varying column counts
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse CSV")
	}

	batch := importer.Classify(rows)
	log.Info().
		Int("admins", len(batch.Admins)).
		Int("members", len(batch.Members)).
		Int("entries", len(batch.Entries)).
		Int("skipped", batch.Skipped).
		Msg("dump classified")

	// Historical dumps carry plaintext credentials; never store them
	// as-is.
	for i := range batch.Admins {
		hash, err := utils.HashPassword(batch.Admins[i].PasswordHash)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin credential")
		}
		batch.Admins[i].PasswordHash = hash
	}
	for i := range batch.Members {
		hash, err := utils.HashPassword(batch.Members[i].PasswordHash)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash member credential")
		}
		batch.Members[i].PasswordHash = hash
	}

	db, err := infra.InitPostgresql(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer infra.ClosePostgresql(db)

	ctx := context.Background()
	adminRepo := repositories.NewAdminRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)

	if err := adminRepo.BulkInsert(ctx, batch.Admins); err != nil {
		log.Fatal().Err(err).Msg("admin import failed")
	}
	if err := memberRepo.BulkInsert(ctx, batch.Members); err != nil {
		log.Fatal().Err(err).Msg("member import failed")
	}
	if err := ledgerRepo.BulkInsert(ctx, batch.Entries); err != nil {
		log.Fatal().Err(err).Msg("ledger import failed")
	}

	log.Info().Msg("import complete")
}
