package db_models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryCategory int16

const (
	CategoryCredit EntryCategory = 100
	CategoryDebit  EntryCategory = 200
)

// CategoryForAmount maps a signed amount to its category code.
func CategoryForAmount(amount float64) EntryCategory {
	if amount < 0 {
		return CategoryDebit
	}
	return CategoryCredit
}

// LedgerEntry is immutable once created: there is no update or delete
// path anywhere in the API. A member's balance is always
// SUM(amount) over their entries, never a stored column.
type LedgerEntry struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	MemberID  uint          `gorm:"index" json:"member_id"`
	Concept   string        `json:"concept"`
	Amount    float64       `json:"amount"` // positive = credit, negative = debit
	Category  EntryCategory `json:"category"`
	Status    AccountStatus `gorm:"size:1" json:"status"`
	CreatedAt time.Time     `json:"created_at"`

	// Raw source row kept by the bulk importer, empty for API-authored
	// entries.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = Today()
	}
	return nil
}
