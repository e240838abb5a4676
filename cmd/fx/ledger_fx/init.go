package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"clubpuntos/internal/repositories"
	"clubpuntos/internal/services"
)

var Module = fx.Provide(
	provideLedgerRepo, provideTransactionService)

func provideLedgerRepo(db *gorm.DB) repositories.LedgerRepository {
	return repositories.NewLedgerRepository(db)
}

func provideTransactionService(memberRepo repositories.MemberRepository, ledgerRepo repositories.LedgerRepository) services.TransactionServiceInterface {
	return services.NewTransactionService(memberRepo, ledgerRepo)
}
