package bootstrap

import (
	"context"

	"github.com/moodscape-io/moodscape/internal/config"
	"github.com/moodscape-io/moodscape/internal/infra/blob"
	"github.com/moodscape-io/moodscape/internal/infra/cache"
	"github.com/moodscape-io/moodscape/internal/infra/db"
	"github.com/moodscape-io/moodscape/internal/infra/llm"
	"github.com/moodscape-io/moodscape/internal/infra/logger"
	"github.com/moodscape-io/moodscape/internal/infra/queue"
	"github.com/moodscape-io/moodscape/internal/modules/handler"
	"github.com/moodscape-io/moodscape/internal/modules/model"
	"github.com/moodscape-io/moodscape/internal/modules/repo"
	"github.com/moodscape-io/moodscape/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Background{},
				&model.Track{},
				&model.ClockFontStyle{},
				&model.TextFont{},
				&model.Tag{},
				&model.Space{},
				&model.SpaceTag{},
				&model.Playlist{},
				&model.PlaylistTrack{},
				&model.Note{},
				&model.AiGeneratedContent{},
				&model.WidgetPosition{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := cache.New(cfg)
		return rdb, nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// Lifecycle event publisher
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Exchange,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})

	// LLM gateway
	do.Provide(inj, func(i *do.Injector) (*llm.Client, error) {
		return llm.NewClient(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.CatalogRepo, error) {
		return repo.NewCatalogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SpaceRepo, error) {
		return repo.NewSpaceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.CatalogService, error) {
		return service.NewCatalogService(
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InterpreterService, error) {
		return service.NewInterpreterService(
			do.MustInvoke[*llm.Client](i),
			do.MustInvoke[service.CatalogService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MatcherService, error) {
		return service.NewMatcherService(do.MustInvoke[service.CatalogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SpaceService, error) {
		return service.NewSpaceService(
			do.MustInvoke[repo.SpaceRepo](i),
			do.MustInvoke[repo.CatalogRepo](i),
			do.MustInvoke[service.InterpreterService](i),
			do.MustInvoke[service.MatcherService](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReflectionService, error) {
		return service.NewReflectionService(
			do.MustInvoke[repo.SpaceRepo](i),
			do.MustInvoke[*llm.Client](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.SpaceHandler, error) {
		return handler.NewSpaceHandler(do.MustInvoke[service.SpaceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReflectionHandler, error) {
		return handler.NewReflectionHandler(
			do.MustInvoke[service.ReflectionService](i),
			do.MustInvoke[service.SpaceService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CatalogHandler, error) {
		return handler.NewCatalogHandler(do.MustInvoke[service.CatalogService](i)), nil
	})

	return inj
}
