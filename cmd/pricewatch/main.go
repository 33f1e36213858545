package main

import (
	"context"
	"log/slog"
	"os"

	"pricewatch/config"
	"pricewatch/internal/delivery"
	deliveryhttp "pricewatch/internal/delivery/http"
	"pricewatch/internal/delivery/http/middleware"
	"pricewatch/internal/delivery/http/router/handler"
	"pricewatch/internal/infra/auth"
	logs "pricewatch/internal/infra/log"
	"pricewatch/internal/infra/persistence/postgres"
	"pricewatch/internal/infra/pubsub"
	"pricewatch/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			runMigrations,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		auth.NewJWTService,
		pubsub.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewSubcategoryRepository,
			postgres.NewLocationRepository,
			postgres.NewProviderRepository,
			postgres.NewProductRepository,
			postgres.NewVariantRepository,
			postgres.NewProductProviderRepository,
			postgres.NewPriceRepository,
			postgres.NewWatchlistRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewPriceService,
			impl.NewProviderService,
			impl.NewWatchlistService,
			impl.NewScrapeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewProductHandler,
			handler.NewPriceHandler,
			handler.NewProviderHandler,
			handler.NewWatchlistHandler,
			handler.NewScrapeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	if err := postgres.RunMigrations(db); err != nil {
		return err
	}

	logger.Info("Database migrations applied")

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
