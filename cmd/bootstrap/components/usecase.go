package components

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/pkg/password"
	"venue-desk/internal/usecase"
	"venue-desk/internal/usecase/catalog"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(loc *time.Location) clock.Clock {
		return clock.NewRealClockIn(loc)
	},
	NewResolver,
	NewOperatorAccount,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewEventCommands,
		commands.NewAssignmentCommands,
		commands.NewClubCommands,
		catalog.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewEventQueries,
		queries.NewAssignmentQueries,
		queries.NewClubQueries,
		queries.NewExportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewResolver(cfg config.Config) (*reservation.Resolver, error) {
	policy, err := reservation.ParsePolicy(cfg.Availability.Policy)
	if err != nil {
		return nil, err
	}
	return reservation.NewResolver(policy), nil
}

// NewOperatorAccount fails on a hash bcrypt cannot read.
func NewOperatorAccount(cfg config.Config, logger *slog.Logger) (commands.OperatorAccount, error) {
	cost, err := password.Cost(cfg.Operator.PasswordHash)
	if err != nil {
		return commands.OperatorAccount{}, errs.Wrap(err, "OPERATOR_PASSWORD_HASH")
	}
	if cost < password.DefaultCost {
		logger.Warn("operator password hash uses a low bcrypt cost", "cost", cost)
	}
	return commands.OperatorAccount{
		Login:        cfg.Operator.Login,
		PasswordHash: cfg.Operator.PasswordHash,
	}, nil
}
