package db_fx

import (
	"go.uber.org/fx"

	"clubpuntos/internal/config"
	"clubpuntos/internal/infra"
)

var Module = fx.Provide(
	config.Load, infra.InitPostgresql)
