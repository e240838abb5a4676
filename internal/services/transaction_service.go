package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/repositories"
	"clubpuntos/pkg/logger"
	"clubpuntos/pkg/utils"
)

type TransactionServiceInterface interface {
	RecordTransaction(ctx context.Context, memberID uint, amount float64, concept string, category db_models.EntryCategory) (*db_models.LedgerEntry, error)
}

type TransactionService struct {
	memberRepo repositories.MemberRepository
	ledgerRepo repositories.LedgerRepository
}

func NewTransactionService(memberRepo repositories.MemberRepository, ledgerRepo repositories.LedgerRepository) TransactionServiceInterface {
	return &TransactionService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
	}
}

// RecordTransaction is the only path that appends ledger entries at
// runtime. Credits and debits share it; the sign of amount decides the
// direction. A zero category is derived from the sign, a non-zero one
// must agree with it. Negative balances are allowed: no over-redemption
// rule exists.
func (t *TransactionService) RecordTransaction(ctx context.Context, memberID uint, amount float64, concept string, category db_models.EntryCategory) (*db_models.LedgerEntry, error) {

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount == 0 {
		return nil, fmt.Errorf("%w: amount must be a finite non-zero number", utils.ErrValidation)
	}

	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil, fmt.Errorf("%w: concept must not be empty", utils.ErrValidation)
	}

	derived := db_models.CategoryForAmount(amount)
	switch category {
	case 0:
		category = derived
	case derived:
	default:
		return nil, fmt.Errorf("%w: category %d contradicts the sign of amount", utils.ErrValidation, category)
	}

	member, err := t.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrAccountNotFound
	}

	entry := &db_models.LedgerEntry{
		MemberID: member.ID,
		Concept:  concept,
		Amount:   amount,
		Category: category,
	}
	if err := t.ledgerRepo.Insert(ctx, entry); err != nil {
		return nil, utils.ErrDatabaseError
	}

	log := logger.Get()
	log.Info().
		Uint("member_id", member.ID).
		Float64("amount", amount).
		Int16("category", int16(category)).
		Msg("ledger entry recorded")

	return entry, nil
}
