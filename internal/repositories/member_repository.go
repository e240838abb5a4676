package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clubpuntos/internal/models/db_models"
)

type MemberRepository interface {
	FindByID(ctx context.Context, id uint) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	ListAll(ctx context.Context) ([]db_models.Member, error)
	// RegisterWithWelcome inserts the member and their welcome ledger
	// entry in one transaction; either both rows land or neither does.
	RegisterWithWelcome(ctx context.Context, member *db_models.Member, welcome *db_models.LedgerEntry) error
	BulkInsert(ctx context.Context, members []db_models.Member) error
	ListWithBalances(ctx context.Context) ([]MemberBalanceRow, error)
}

// MemberBalanceRow is the aggregate-join projection used for the
// directory listing and ranking input. One query instead of one
// balance query per member.
type MemberBalanceRow struct {
	ID           uint      `gorm:"column:id"`
	Email        string    `gorm:"column:email"`
	Name         string    `gorm:"column:name"`
	ReferralLink string    `gorm:"column:referral_link"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	Balance      float64   `gorm:"column:balance"`
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (m *memberRepository) FindByID(ctx context.Context, id uint) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).First(&member, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := m.db.WithContext(ctx).First(&member, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (m *memberRepository) ListAll(ctx context.Context) ([]db_models.Member, error) {
	var members []db_models.Member
	err := m.db.WithContext(ctx).Order("id ASC").Find(&members).Error
	return members, err
}

func (m *memberRepository) RegisterWithWelcome(ctx context.Context, member *db_models.Member, welcome *db_models.LedgerEntry) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		welcome.MemberID = member.ID
		return tx.Create(welcome).Error
	})
}

func (m *memberRepository) BulkInsert(ctx context.Context, members []db_models.Member) error {
	if len(members) == 0 {
		return nil
	}
	return m.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&members).Error
}

func (m *memberRepository) ListWithBalances(ctx context.Context) ([]MemberBalanceRow, error) {
	var rows []MemberBalanceRow
	err := m.db.WithContext(ctx).
		Table("members m").
		Select("m.id, m.email, m.name, m.referral_link, m.status, m.created_at, COALESCE(SUM(e.amount), 0) AS balance").
		Joins("LEFT JOIN ledger_entries e ON e.member_id = m.id").
		Group("m.id").
		Order("m.id ASC").
		Find(&rows).Error
	return rows, err
}
