package db_models

import (
	"time"

	"gorm.io/gorm"
)

type AccountStatus string

const (
	StatusActive   AccountStatus = "A"
	StatusInactive AccountStatus = "I"
)

// Admin rows live in their own table; an admin id and a member id may
// collide numerically without referring to the same person.
type Admin struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Email        string        `gorm:"unique" json:"email"`
	Name         string        `json:"name"`
	PasswordHash string        `json:"-"`
	Role         string        `gorm:"size:3" json:"role"` // ADM or OPE
	Status       AccountStatus `gorm:"size:1" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusActive
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = Today()
	}
	return nil
}

// Today truncates to date granularity; the ledger never records
// time-of-day.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
