package ranking_fx

import (
	"go.uber.org/fx"

	"clubpuntos/internal/services"
)

var Module = fx.Provide(
	provideRankingService)

func provideRankingService(memberService services.MemberServiceInterface) services.RankingServiceInterface {
	return services.NewRankingService(memberService)
}
