package components

import (
	"homeclean-booking/internal/domain/catalog"
	"homeclean-booking/internal/infra/catalogfile"
	"homeclean-booking/internal/infra/managerapi"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		NewCatalog,
		fx.Annotate(
			NewManagerClient,
			fx.As(new(commands.ManagerFinder)),
		),
	),
)

func NewCatalog(cfg config.Config) (*catalog.Catalog, error) {
	return catalogfile.Load(cfg.Catalog.Path)
}

func NewManagerClient(cfg config.Config) (*managerapi.Client, error) {
	return managerapi.NewClient(cfg.ManagerAPI.BaseURL, cfg.ManagerAPI.Timeout, nil)
}
