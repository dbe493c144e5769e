package components

import (
	"fmt"

	"booking-core/internal/domain/order"
	"booking-core/internal/pkg/clock"
	"booking-core/internal/pkg/config"
	"booking-core/internal/usecase"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewOrderSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOrderCommands,
		// Reads expire lapsed holds through the command side first.
		func(cmds commands.OrderCommands) queries.StaleOrderSweeper { return cmds },
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewOrderSettings(cfg config.Config) (commands.OrderSettings, error) {
	settings := commands.DefaultOrderSettings()
	if cfg.Order.HoldWindow > 0 {
		settings.HoldWindow = cfg.Order.HoldWindow
	}
	if cfg.Order.MaxQuantityPerLine > 0 {
		settings.MaxQuantityPerLine = cfg.Order.MaxQuantityPerLine
	}

	eps, err := decimal.NewFromString(cfg.Order.AmountEpsilon)
	if err != nil || eps.IsNegative() {
		return commands.OrderSettings{}, fmt.Errorf("invalid ORDER_AMOUNT_EPSILON %q", cfg.Order.AmountEpsilon)
	}
	settings.AmountEpsilon = eps

	fee, err := order.NewMoney(cfg.Order.TransferFeeCents)
	if err != nil {
		return commands.OrderSettings{}, fmt.Errorf("invalid ORDER_TRANSFER_FEE_CENTS: %w", err)
	}
	settings.TransferFee = fee

	return settings, nil
}
