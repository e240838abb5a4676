package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clubpuntos/internal/repositories"
	"clubpuntos/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAuthService)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAuthService(adminRepo repositories.AdminRepository, memberRepo repositories.MemberRepository) services.AuthServiceInterface {
	return services.NewAuthService(adminRepo, memberRepo)
}
