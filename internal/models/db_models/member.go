package db_models

import (
	"time"

	"gorm.io/gorm"
)

type Member struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"index" json:"email"`
	Name         string        `json:"name"`
	PasswordHash string        `json:"-"`
	ReferralLink string        `json:"referral_link"`
	Status       AccountStatus `gorm:"size:1" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`

	Entries []LedgerEntry `gorm:"foreignKey:MemberID" json:"-"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = StatusActive
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = Today()
	}
	return nil
}
