package bootstrap

import (
	"vehicle-booking/internal/infra/gateway"
	"vehicle-booking/internal/pkg/config"
	"vehicle-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewVehicleClient,
			fx.As(new(commands.VehicleGateway)),
		),
	),
)

func NewVehicleClient(cfg config.Config) *gateway.VehicleClient {
	return gateway.NewVehicleClient(cfg.VehicleAPI)
}
