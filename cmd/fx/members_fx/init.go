package members_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clubpuntos/internal/repositories"
	"clubpuntos/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideMemberService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideMemberService(memberRepo repositories.MemberRepository, ledgerRepo repositories.LedgerRepository) services.MemberServiceInterface {
	return services.NewMemberService(memberRepo, ledgerRepo)
}
