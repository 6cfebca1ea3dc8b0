package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/market-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/market-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/market-backend/internal/infrastructure/kafka"
	"github.com/DRSN-tech/market-backend/internal/infrastructure/mail"
	"github.com/DRSN-tech/market-backend/internal/infrastructure/payment"
	"github.com/DRSN-tech/market-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/market-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/market-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/market-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/market-backend/internal/usecase"
	"github.com/DRSN-tech/market-backend/pkg/clients"
	"github.com/DRSN-tech/market-backend/pkg/closer"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/DRSN-tech/market-backend/pkg/logger"
	"github.com/DRSN-tech/market-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App держит все подключения и фоновые процессы приложения.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db          *postgres.PgDatabase
	redisClient *clients.RedisClient
	producer    *kafka.Producer
	worker      *kafka.OutboxWorker
	consumer    *kafka.PaymentConsumer
	httpSrv     *v1Http.Server
	closer      *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	userConv := pgdbConv.NewUserConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	detailConv := redisConv.NewProductDetailConverterImpl()

	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	userRepo := pgdb.NewUserRepo(db.Pool, userConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, detailConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	gateway := payment.NewGateway(cfg.Payment, log)
	mailSender, err := mail.NewSender(cfg.Mail, log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	categoryUC := usecase.NewCategoryUC(categoryRepo, productRepo, log)
	productUC := usecase.NewProductUC(productRepo, categoryRepo, cacheRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, productRepo, log)
	orderUC := usecase.NewOrderUC(orderRepo, cartRepo, outboxRepo, db.Pool, log)
	paymentUC := usecase.NewPaymentUC(orderRepo, userRepo, gateway, mailSender, log)
	authUC := usecase.NewAuthUC(userRepo, cfg.Auth, log)

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	consumer := kafka.NewPaymentConsumer(paymentUC, log, cfg.Kafka)

	r := chi.NewRouter()
	authMiddleware := v1Http.NewAuthMiddleware(cfg.Auth, log)
	router := v1Http.NewRouter(r, authMiddleware, log)
	router.Init(categoryUC, productUC, cartUC, orderUC, authUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	return &App{
		cfg:         cfg,
		logger:      log,
		db:          db,
		redisClient: redisClient,
		producer:    producer,
		worker:      worker,
		consumer:    consumer,
		httpSrv:     httpSrv,
		closer:      closer.NewCloser(2 * time.Second),
	}, nil
}

// Run запускает фоновые процессы и HTTP-сервер и блокируется
// до сигнала остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.worker.Start(ctx)
	a.consumer.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	cancel()
	a.registerClosers()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// registerClosers выстраивает порядок остановки: сначала перестаём принимать
// запросы, затем останавливаем воркеры и лишь потом закрываем подключения.
func (a *App) registerClosers() {
	a.closer.Add(func(ctx context.Context) error {
		a.db.Close()
		return nil
	})
	a.closer.Add(func(ctx context.Context) error {
		return a.redisClient.Client.Close()
	})
	a.closer.Add(func(ctx context.Context) error {
		return a.producer.Close()
	})
	a.closer.Add(func(ctx context.Context) error {
		return a.consumer.Stop()
	})
	a.closer.Add(func(ctx context.Context) error {
		a.worker.Stop()
		return nil
	})
	a.closer.Add(func(ctx context.Context) error {
		return a.httpSrv.Stop(ctx)
	})
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
