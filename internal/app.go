package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-service/config"
	"user-service/internal/application/ports"
	"user-service/internal/application/usecase"
	"user-service/internal/domain/user"
	"user-service/internal/infrastructure/db/memory"
	"user-service/internal/infrastructure/db/postgres"
	pguser "user-service/internal/infrastructure/db/postgres/user"
	"user-service/internal/infrastructure/hasher"
	"user-service/internal/infrastructure/jwt"
	"user-service/internal/infrastructure/logger"
	"user-service/internal/infrastructure/metrics"
	"user-service/internal/infrastructure/mq"
	"user-service/internal/interface/api/rest"
	"user-service/internal/interface/api/rest/middleware"
	"user-service/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	flushLog   func()
	cfg        config.Config
	db         *pgxpool.Pool
	repo       user.Repository
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     usecase.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewApp(ctx context.Context) (*App, error) {
	// config; a missing .env is fine, the environment may already be set
	envErr := godotenv.Load(".env")
	cfg := config.Load()

	// logger
	log, flushLog := logger.New(cfg.Log)
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		log.Warn("error loading .env file", zap.Error(envErr))
	}

	a := &App{
		logger:   log,
		flushLog: flushLog,
		cfg:      cfg,
		// metrics
		mCounter: metrics.NewCounter(prometheus.DefaultRegisterer),
	}

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	a.router = gin.New()
	a.router.Use(gin.Recovery())
	a.router.Use(middleware.RequestLogGin(log, a.mCounter))

	// httpServer
	a.httpSrv = &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// store
	if err := a.initStore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	// rabbitMQ
	if err := a.initMQ(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) initStore(ctx context.Context) error {
	switch a.cfg.Store.Driver {
	case config.StoreDriverMemory:
		a.repo = memory.NewUserRepository()
		a.logger.Warn("using in-memory user store, data is lost on restart")
	case config.StoreDriverPostgres:
		dbDsn, err := a.cfg.DBDSN()
		if err != nil {
			return fmt.Errorf("DB config error: %w", err)
		}
		dbPool, err := postgres.New(ctx, a.logger, dbDsn)
		if err != nil {
			return err
		}
		a.db = dbPool
		a.repo = pguser.NewRepository(dbPool)
	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}

	return nil
}

func (a *App) initMQ(ctx context.Context) error {
	if !a.cfg.MQ.Enabled() {
		a.events = mq.NopPublisher{}
		a.logger.Info("rabbitmq is not configured, user events are not published")
		return nil
	}

	rabbitDsn, err := a.cfg.AMQPDSN()
	if err != nil {
		return fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(a.cfg.MQ, a.logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		return fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	a.mq = rbMQ
	a.events = rbMQ
	if err = rbMQ.Init(); err != nil {
		return fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer
	rmqConsumer := rmqconsumer.New(a.cfg.MQ, a.logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		return fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		return fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	a.mqConsumer = rmqConsumer

	return nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
		a.mq = nil
	}
	if a.flushLog != nil {
		a.flushLog()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// use-cases
	ucs := rest.UserUseCases{
		Create:  usecase.NewCreateUser(a.repo, a.events, a.mCounter, a.logger),
		Update:  usecase.NewUpdateUser(a.repo, a.events, a.mCounter, a.logger),
		Delete:  usecase.NewDeleteUser(a.repo, a.events, a.mCounter, a.logger),
		GetByID: usecase.NewGetUserByID(a.repo, a.logger),
		GetAll:  usecase.NewGetAllUsers(a.repo, a.logger),
	}

	// services
	if a.cfg.App.JWTSecret == "" {
		a.logger.Warn("SERVICE_JWT_SECRET is empty, bearer tokens will be rejected")
	}
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	bcrypt := hasher.NewBcrypt(0)

	// controllers
	rest.NewUserController(a.router, ucs, bcrypt, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, a.healthHandler)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) healthHandler(c *gin.Context) {
	if a.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			a.logger.Warn("health check failed", zap.Error(err))
			c.Status(http.StatusServiceUnavailable)
			return
		}
	}
	c.Status(http.StatusOK)
}

func (a *App) Logger() *zap.Logger { return a.logger }
