package bootstrap

import (
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/clock"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/config"
	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}
