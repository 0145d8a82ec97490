package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"venue-desk/internal/infra/db"
	"venue-desk/internal/infra/export"
	"venue-desk/internal/infra/readstore"
	"venue-desk/internal/infra/uow"
	"venue-desk/internal/usecase/queries"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	exportModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventReadStore)),
		),
		fx.Annotate(
			readstore.NewAssignmentReadStore,
			fx.As(new(queries.AssignmentReadStore)),
		),
		fx.Annotate(
			readstore.NewClubReadStore,
			fx.As(new(queries.ClubReadStore)),
		),
	),
)

// Repositories are bound per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

var exportModule = fx.Module("persistence/export",
	fx.Provide(
		fx.Annotate(
			export.NewCSVEncoder,
			fx.As(new(queries.TableEncoder)),
		),
		fx.Annotate(
			export.NewICSEncoder,
			fx.As(new(queries.CalendarEncoder)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
