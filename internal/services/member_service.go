package services

import (
	"context"
	"time"

	"clubpuntos/internal/models/db_models"
	"clubpuntos/internal/models/response_models"
	"clubpuntos/internal/repositories"
	"clubpuntos/pkg/utils"
)

type MemberServiceInterface interface {
	GetAccountView(ctx context.Context, memberID uint) (*response_models.AccountView, error)
	ListWithBalances(ctx context.Context) ([]response_models.MemberBalance, error)
}

type MemberService struct {
	memberRepo repositories.MemberRepository
	ledgerRepo repositories.LedgerRepository
}

func NewMemberService(memberRepo repositories.MemberRepository, ledgerRepo repositories.LedgerRepository) MemberServiceInterface {
	return &MemberService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
	}
}

// GetAccountView returns the member, their full history newest-first and
// the balance. Balance is recomputed from the entries on every read;
// there is no cached balance column anywhere to drift out of sync.
func (m *MemberService) GetAccountView(ctx context.Context, memberID uint) (*response_models.AccountView, error) {

	member, err := m.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrAccountNotFound
	}

	entries, err := m.ledgerRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var balance float64
	for _, entry := range entries {
		balance += entry.Amount
	}

	return &response_models.AccountView{
		Member:  *member,
		Balance: balance,
		Entries: entries,
	}, nil
}

// ListWithBalances feeds the admin directory and the ranking engine from
// one aggregate query.
func (m *MemberService) ListWithBalances(ctx context.Context) ([]response_models.MemberBalance, error) {

	rows, err := m.memberRepo.ListWithBalances(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	balances := make([]response_models.MemberBalance, 0, len(rows))
	for _, row := range rows {
		balances = append(balances, response_models.MemberBalance{
			Member: db_models.Member{
				ID:           row.ID,
				Email:        row.Email,
				Name:         row.Name,
				ReferralLink: row.ReferralLink,
				Status:       db_models.AccountStatus(row.Status),
				CreatedAt:    row.CreatedAt.Truncate(24 * time.Hour),
			},
			Balance: row.Balance,
		})
	}

	return balances, nil
}
