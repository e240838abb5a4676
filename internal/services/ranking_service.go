package services

import (
	"context"
	"sort"

	"clubpuntos/internal/models/response_models"
	"clubpuntos/pkg/utils"
)

type RankingServiceInterface interface {
	Rank(ctx context.Context) ([]response_models.RankedMember, error)
	PositionOf(ctx context.Context, memberID uint) (*response_models.RankPosition, error)
}

type RankingService struct {
	memberService MemberServiceInterface
}

func NewRankingService(memberService MemberServiceInterface) RankingServiceInterface {
	return &RankingService{
		memberService: memberService,
	}
}

// Rank orders all members by balance descending. Positional ranking:
// members with equal balances get adjacent distinct positions, ordered
// by ascending member id (the stable sort preserves the directory's id
// order on ties).
func (r *RankingService) Rank(ctx context.Context) ([]response_models.RankedMember, error) {

	balances, err := r.memberService.ListWithBalances(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Balance > balances[j].Balance
	})

	ranked := make([]response_models.RankedMember, 0, len(balances))
	for i, mb := range balances {
		ranked = append(ranked, response_models.RankedMember{
			Position: i + 1,
			Member:   mb.Member,
			Balance:  mb.Balance,
		})
	}

	return ranked, nil
}

func (r *RankingService) PositionOf(ctx context.Context, memberID uint) (*response_models.RankPosition, error) {

	ranked, err := r.Rank(ctx)
	if err != nil {
		return nil, err
	}

	for _, rm := range ranked {
		if rm.Member.ID == memberID {
			return &response_models.RankPosition{
				Position: rm.Position,
				Total:    len(ranked),
			}, nil
		}
	}

	return nil, utils.ErrAccountNotFound
}
