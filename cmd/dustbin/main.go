package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/smartdustbin/internal/pkg/config"
	"github.com/piresc/smartdustbin/internal/pkg/database"
	"github.com/piresc/smartdustbin/internal/pkg/health"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/pkg/middleware"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	nrpkg "github.com/piresc/smartdustbin/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/smartdustbin/internal/pkg/nsq"
	"github.com/piresc/smartdustbin/internal/pkg/server"
	"github.com/piresc/smartdustbin/services/dustbin"
	"github.com/piresc/smartdustbin/services/dustbin/gateway"
	"github.com/piresc/smartdustbin/services/dustbin/handler"
	"github.com/piresc/smartdustbin/services/dustbin/repository"
	"github.com/piresc/smartdustbin/services/dustbin/usecase"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))
	appName := configs.App.Name

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connection established")
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("store", configs.Store.Driver),
	)

	shutdown := server.NewShutdownManager(zapLogger)

	repo := openStore(configs, zapLogger, shutdown)

	var cronRunner *cron.Cron
	if configs.Cache.Enabled && configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Redis unavailable, serving without cache", zap.Error(err))
		} else {
			shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

			cached := repository.NewCachedRepository(repo, redisClient,
				time.Duration(configs.Cache.TTLSeconds)*time.Second)
			repo = cached

			if configs.Cache.WarmSchedule != "" {
				cronRunner = cron.New()
				_, err := cronRunner.AddFunc(configs.Cache.WarmSchedule, func() {
					ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					if err := cached.Warm(ctx); err != nil {
						zapLogger.Warn("Cache warm failed", zap.Error(err))
					}
				})
				if err != nil {
					zapLogger.Warn("Invalid cache warm schedule, warming disabled",
						zap.String("schedule", configs.Cache.WarmSchedule),
						zap.Error(err))
					cronRunner = nil
				}
			}
		}
	}

	dustbinGW := gateway.NewDustbinGW(nil)
	if configs.NSQ.Address != "" {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, events disabled", zap.Error(err))
		} else {
			shutdown.Register("nsq", func(context.Context) error {
				producer.Stop()
				return nil
			})
			dustbinGW = gateway.NewDustbinGW(producer)
		}
	}

	dustbinUC := usecase.NewDustbinUC(configs, repo, dustbinGW)

	if configs.App.SeedSampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		inserted, err := dustbinUC.SeedSampleData(ctx)
		cancel()
		if err != nil {
			zapLogger.Error("Failed to seed sample data", zap.Error(err))
		} else if inserted > 0 {
			zapLogger.Info("Seeded sample data", zap.Int("count", inserted))
		}
	}

	if cronRunner != nil {
		cronRunner.Start()
		shutdown.Register("cron", func(ctx context.Context) error {
			select {
			case <-cronRunner.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		})
	}

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.HTTPErrorHandler

	e.Use(echomw.CORS())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"store": health.CheckerFunc(repo.Ping),
	})

	handler.NewHandler(dustbinUC, configs).RegisterRoutes(e)

	if err := server.NewGracefulServer(e, zapLogger, configs.Server, shutdown).Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}

// openStore connects the configured record store. Connection failures are
// logged and the service keeps running; requests then report the store as
// unavailable until it comes back.
func openStore(configs *models.Config, zapLogger *logger.ZapLogger, shutdown *server.ShutdownManager) dustbin.DustbinRepo {
	switch configs.Store.Driver {
	case database.DriverPostgres, database.DriverSQLite:
		var (
			client *database.SQLClient
			err    error
		)
		if configs.Store.Driver == database.DriverSQLite {
			client, err = database.NewSQLiteClient(configs.Database)
		} else {
			client, err = database.NewPostgresClient(configs.Database)
		}
		if err != nil {
			zapLogger.Fatal("Failed to open SQL store",
				zap.String("driver", configs.Store.Driver),
				zap.Error(err))
		}
		shutdown.Register("sql", func(context.Context) error { return client.Close() })

		repo := repository.NewSQLRepository(client.GetDB())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			zapLogger.Warn("Failed to ensure schema", zap.Error(err))
		}
		return repo

	default:
		if configs.Store.Driver != database.DriverMongo {
			zapLogger.Warn("Unknown store driver, falling back to mongo",
				zap.String("driver", configs.Store.Driver))
		}
		client, err := database.NewMongoClient(configs.Mongo)
		if client == nil {
			zapLogger.Fatal("Failed to create MongoDB client", zap.Error(err))
		}
		if err != nil {
			zapLogger.Warn("MongoDB not reachable, continuing without database", zap.Error(err))
		}
		shutdown.Register("mongo", client.Close)
		return repository.NewMongoRepository(client)
	}
}
