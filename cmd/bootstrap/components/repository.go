package components

import (
	"qrlink/internal/infra/catalog"
	"qrlink/internal/infra/repository"
	"qrlink/internal/pkg/config"
	"qrlink/internal/qrimage"
	"qrlink/internal/usecase/commands"
	"qrlink/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewQRCodeRepository,
		// The single pgx-backed store serves both the write side and the read
		// side; the split exists only at the interface level.
		func(r *repository.QRCodeRepository) commands.QRCodeRepository { return r },
		func(r *repository.QRCodeRepository) queries.QRCodeReadStore { return r },
		func(cfg config.Config) *catalog.ShopifyCatalog {
			return catalog.NewShopifyCatalog(cfg.Catalog)
		},
		func(c *catalog.ShopifyCatalog) queries.CatalogLookup { return c },
		func(cfg config.Config) (*qrimage.Generator, error) {
			return qrimage.New(cfg.App.URL)
		},
		func(g *qrimage.Generator) queries.ImageProducer { return g },
	),
)
