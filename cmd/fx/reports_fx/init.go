package reports_fx

import (
	"go.uber.org/fx"

	"clubpuntos/internal/repositories"
	"clubpuntos/internal/services"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService(ledgerRepo repositories.LedgerRepository) services.ReportServiceInterface {
	return services.NewReportService(ledgerRepo)
}
