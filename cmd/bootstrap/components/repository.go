package components

import (
	"campushub/internal/infra/db"
	"campushub/internal/infra/repository"
	"campushub/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewEquipmentRepository,
			fx.As(new(usecase.EquipmentRepository)),
			fx.As(new(usecase.EquipmentSweepRepository)),
		),
		fx.Annotate(
			repository.NewEquipmentBookingRepository,
			fx.As(new(usecase.EquipmentBookingRepository)),
			fx.As(new(usecase.EquipmentBookingSweepRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repository.NewRoomBookingRepository,
			fx.As(new(usecase.RoomBookingRepository)),
			fx.As(new(usecase.RoomBookingSweepRepository)),
		),
		fx.Annotate(
			repository.NewTimetableRepository,
			fx.As(new(usecase.TimetableRepository)),
		),
		fx.Annotate(
			repository.NewBookRepository,
			fx.As(new(usecase.BookRepository)),
		),
		fx.Annotate(
			repository.NewIssueRepository,
			fx.As(new(usecase.IssueRepository)),
			fx.As(new(usecase.IssueSweepRepository)),
		),
		fx.Annotate(
			repository.NewSequenceRepository,
			fx.As(new(usecase.SequenceRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
