package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clubpuntos/internal/models/db_models"
)

type LedgerRepository interface {
	Insert(ctx context.Context, entry *db_models.LedgerEntry) error
	// ListByMember returns a member's full history, newest first; ties
	// on the date-granularity timestamp break by descending id so the
	// order is stable.
	ListByMember(ctx context.Context, memberID uint) ([]db_models.LedgerEntry, error)
	ListAll(ctx context.Context, limit int) ([]db_models.LedgerEntry, error)
	BulkInsert(ctx context.Context, entries []db_models.LedgerEntry) error
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

func (l *ledgerRepository) Insert(ctx context.Context, entry *db_models.LedgerEntry) error {
	return l.db.WithContext(ctx).Create(entry).Error
}

func (l *ledgerRepository) ListByMember(ctx context.Context, memberID uint) ([]db_models.LedgerEntry, error) {
	var entries []db_models.LedgerEntry
	err := l.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	return entries, err
}

func (l *ledgerRepository) ListAll(ctx context.Context, limit int) ([]db_models.LedgerEntry, error) {
	var entries []db_models.LedgerEntry
	tx := l.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	err := tx.Find(&entries).Error
	return entries, err
}

func (l *ledgerRepository) BulkInsert(ctx context.Context, entries []db_models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entries).Error
}
