package controllers_fx

import (
	"go.uber.org/fx"

	"dynastytrade/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPagesController))
