package components

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/api"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewQuoteHandler,
		api.NewRuleSheetHandler,
		api.NewOverrideHandler,
		api.NewDefaultsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
