package controllers_fx

import (
	"go.uber.org/fx"

	"clubpuntos/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAuthController,
	controllers.NewMembersController,
	controllers.NewTransactionsController,
)
