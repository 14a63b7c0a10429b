package app

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/pradeepdcosta/pathdrive-console/internal/config"
	"github.com/pradeepdcosta/pathdrive-console/internal/entity"
	"github.com/pradeepdcosta/pathdrive-console/internal/repository"
	"github.com/pradeepdcosta/pathdrive-console/internal/service"
	httpt "github.com/pradeepdcosta/pathdrive-console/internal/transport/http"
	kafkat "github.com/pradeepdcosta/pathdrive-console/internal/transport/kafka"
	"github.com/pradeepdcosta/pathdrive-console/pkg/cache"
	"github.com/pradeepdcosta/pathdrive-console/pkg/kafka"
	"github.com/pradeepdcosta/pathdrive-console/pkg/kafka/dlq"
	"github.com/pradeepdcosta/pathdrive-console/pkg/logger"
	"github.com/pradeepdcosta/pathdrive-console/pkg/metric"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres"
	"github.com/pradeepdcosta/pathdrive-console/pkg/storage/postgres/transaction"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type services struct {
	catalog   *service.CatalogService
	inventory *service.InventoryService
	orders    *service.OrderService
}

func Run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	eg, ctx := errgroup.WithContext(ctx)

	metrics := initMetrics(eg, &cfg.Metrics, log)

	db, dbErr := initDatabase(&cfg.Postgres, log)
	if dbErr != nil {
		return dbErr
	}
	defer closeDB(db)

	txManager, txErr := initTransactionManager(
		db,
		log,
		metrics,
	)
	if txErr != nil {
		return txErr
	}

	orderCache, cacheErr := initCache(&cfg.Cache, log, metrics)
	if cacheErr != nil {
		return cacheErr
	}
	defer stopCache(orderCache)

	svcs := initServices(
		cfg,
		db,
		txManager,
		orderCache,
		log,
	)

	if serverErr := initHTTPServer(ctx, eg, &cfg.HTTP, svcs, log, metrics); serverErr != nil {
		return serverErr
	}

	if kafkaErr := initKafkaComponents(ctx, eg, cfg, svcs.orders, log, metrics); kafkaErr != nil {
		return kafkaErr
	}

	return waitForShutdown(eg)
}

func initMetrics(
	eg *errgroup.Group,
	cfg *config.Metrics,
	log logger.Logger,
) metric.Factory {
	metrics := metric.NewFactory()

	hostPort := net.JoinHostPort(cfg.Host, cfg.Port)
	metricsServer := &http.Server{
		Addr:              hostPort,
		Handler:           metrics.Handler(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	eg.Go(func() error {
		log.Infow("starting metrics server", "port", cfg.Port)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("app.initMetrics: %w", err)
		}
		return nil
	})

	return metrics
}

func initDatabase(cfg *config.Postgres, log logger.Logger) (*postgres.Postgres, error) {
	db, err := postgres.NewPostgres(
		cfg,
		log.With("component", "database"),
		postgres.MaxPoolSize(cfg.PoolMax),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initDatabase: %w", err)
	}
	return db, nil
}

func closeDB(db *postgres.Postgres) {
	if db != nil {
		db.Close()
	}
}

func initTransactionManager(
	db *postgres.Postgres,
	log logger.Logger,
	metrics metric.Factory,
) (transaction.Manager, error) {
	txManager, err := transaction.NewManager(
		db,
		log.With("component", "transaction manager"),
		metrics.Transaction(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initTransactionManager: %w", err)
	}
	return txManager, nil
}

func initCache(
	cfg *config.Cache,
	log logger.Logger,
	metrics metric.Factory,
) (cache.Cache[uuid.UUID, *entity.Order], error) {
	orderCache, err := cache.NewLRUCache[uuid.UUID, *entity.Order](
		"order",
		cfg.Capacity,
		log.With("component", "cache"),
		metrics.Cache(),
	)
	if err != nil {
		return nil, fmt.Errorf("app.initCache: %w", err)
	}
	orderCache.StartCleanup(cfg.CleanupInterval)
	return orderCache, nil
}

func stopCache(orderCache cache.Cache[uuid.UUID, *entity.Order]) {
	if orderCache != nil {
		orderCache.StopCleanup()
	}
}

func initServices(
	cfg *config.Config,
	db *postgres.Postgres,
	txManager transaction.Manager,
	orderCache cache.Cache[uuid.UUID, *entity.Order],
	log logger.Logger,
) *services {
	locationRepo := repository.NewLocationRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	capacityRepo := repository.NewCapacityRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	itemRepo := repository.NewOrderItemRepository(db)

	return &services{
		catalog: service.NewCatalogService(
			locationRepo,
			routeRepo,
			capacityRepo,
			log.With("component", "catalog service"),
		),
		inventory: service.NewInventoryService(
			routeRepo,
			capacityRepo,
			txManager,
			log.With("component", "inventory service"),
		),
		orders: service.NewOrderService(
			orderRepo,
			itemRepo,
			capacityRepo,
			routeRepo,
			txManager,
			log.With("component", "order service"),
			orderCache,
			cfg.Cache.TTL,
		),
	}
}

func initHTTPServer(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.HTTP,
	svcs *services,
	log logger.Logger,
	metrics metric.Factory,
) error {
	httpServer, err := httpt.NewHTTPServer(
		httpt.NewPortalHandler(svcs.catalog, svcs.inventory, svcs.orders, log, metrics.HTTP()),
		cfg,
		log.With("component", "http server"),
	)
	if err != nil {
		return fmt.Errorf("app.initHTTPServer: %w", err)
	}

	eg.Go(func() error {
		return httpServer.Start(ctx)
	})
	return nil
}

func initKafkaComponents(
	ctx context.Context,
	eg *errgroup.Group,
	cfg *config.Config,
	orderService *service.OrderService,
	log logger.Logger,
	metrics metric.Factory,
) error {
	paymentReader, err := kafka.NewKafkaReader(cfg.Kafka, log.With("component", "kafka reader"))
	if err != nil {
		return fmt.Errorf("app.initKafkaComponents: kafka reader creation: %w", err)
	}

	deadLetterQueue, err := dlq.NewDLQ(cfg.DLQ, log.With("component", "dlq"), metrics.DLQ())
	if err != nil {
		return fmt.Errorf("app.initKafkaComponents: dead letter queue creation: %w", err)
	}

	paymentConsumer := kafkat.NewPaymentConsumer(
		paymentReader,
		deadLetterQueue,
		orderService,
		metrics.Kafka(),
		log,
	)
	eg.Go(func() error {
		return paymentConsumer.Start(ctx)
	})

	dlqReader, err := kafka.NewKafkaReader(config.Kafka{
		GroupID: cfg.DLQ.GroupID,
		Brokers: cfg.DLQ.Brokers,
		Topic:   cfg.DLQ.Topic,
	}, log.With("component", "dlq reader"))
	if err != nil {
		return fmt.Errorf("app.initKafkaComponents: dlq reader creation: %w", err)
	}

	dlqProcessor := kafkat.NewDLQProcessor(
		dlqReader,
		deadLetterQueue,
		orderService,
		cfg.DLQ.MaxRetryCount,
		log,
	)
	eg.Go(func() error {
		return dlqProcessor.Start(ctx)
	})

	return nil
}

func waitForShutdown(eg *errgroup.Group) error {
	if err := eg.Wait(); err != nil && !isShutdownSignal(err) {
		return fmt.Errorf("app.waitForShutdown: application failed: %w", err)
	}
	return nil
}

func isShutdownSignal(err error) bool {
	return err != nil && err.Error() == "shutdown signal"
}
