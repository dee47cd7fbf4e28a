package components

import (
	"saba-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// RepositoryModule provides the write side. Repositories are created per
// transaction by the unit of work.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
