package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"zentrix-api/config"
	"zentrix-api/internal/application/ports"
	"zentrix-api/internal/application/services"
	"zentrix-api/internal/domain/alert"
	"zentrix-api/internal/infrastructure/db/postgres"
	"zentrix-api/internal/infrastructure/db/postgres/erpcompany"
	"zentrix-api/internal/infrastructure/db/postgres/invoice"
	"zentrix-api/internal/infrastructure/db/postgres/notification"
	"zentrix-api/internal/infrastructure/db/postgres/user"
	"zentrix-api/internal/infrastructure/export"
	"zentrix-api/internal/infrastructure/jwt"
	"zentrix-api/internal/infrastructure/metrics"
	"zentrix-api/internal/infrastructure/mq"
	"zentrix-api/internal/infrastructure/resettoken"
	"zentrix-api/internal/infrastructure/s3"
	"zentrix-api/internal/interface/api/rest"
	"zentrix-api/internal/interface/api/rest/middleware"
	"zentrix-api/pkg/rmqconsumer"
)

const resetSweepInterval = 10 * time.Minute

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	redis      *redis.Client
	tokens     ports.ResetTokenStore
	storage    ports.ObjectStorage
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
	policy     alert.Policy
	alertLoc   *time.Location
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config: .env is optional, the environment wins
	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()
	if cfg.App.JWTSecret == "" {
		logger.Fatal("SERVICE_JWT_SECRET is required")
	}

	policy, err := alert.ParsePolicy(cfg.Alerts.Policy)
	if err != nil {
		logger.Fatal("alert config error", zap.Error(err))
	}
	alertLoc, err := time.LoadLocation(cfg.Alerts.Timezone)
	if err != nil {
		logger.Fatal("alert timezone error", zap.String("tz", cfg.Alerts.Timezone), zap.Error(err))
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter, rest.CredentialRoutes...))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// reset tokens: redis when reachable, memory otherwise
	tokens, redisClient := resettoken.NewStore(ctx, cfg, logger)

	// s3 (optional report archive)
	var storage ports.ObjectStorage
	if cfg.S3Enabled() {
		s3Client, err := s3.New(ctx, logger, cfg.S3)
		if err != nil {
			logger.Fatal("failed to init S3", zap.Error(err))
		}
		storage = s3Client
	} else {
		logger.Info("s3 not configured, report archive disabled")
	}

	// rabbitMQ (optional): without a broker events are dropped
	rbMQ := mq.New(cfg.MQ, logger)
	var rmqConsumer ports.RMQConsumer
	if cfg.MQEnabled() {
		rabbitDsn, err := cfg.AMQPDSN()
		if err != nil {
			logger.Fatal("RabbitMQ config error", zap.Error(err))
		}
		if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
			logger.Fatal("failed to connect to rabbitMQ", zap.Error(err))
		}
		if err = rbMQ.Init(); err != nil {
			logger.Fatal("failed init rabbitMQ", zap.Error(err))
		}
		//rmqConsumer
		consumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
		if err = consumer.Connect(rabbitDsn); err != nil {
			logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
		}
		if err = consumer.Init(); err != nil {
			logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
		}
		rmqConsumer = consumer
	} else {
		logger.Info("rabbitMQ not configured, events are dropped")
	}

	return &App{
		logger:     logger,
		cfg:        cfg,
		db:         dbPool,
		redis:      redisClient,
		tokens:     tokens,
		storage:    storage,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
		policy:     policy,
		alertLoc:   alertLoc,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.cfg.MQEnabled() {
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

	if mem, ok := a.tokens.(*resettoken.MemoryStore); ok {
		g.Go(func() error {
			mem.SweepWorker(ctx, resetSweepInterval)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	invoiceRepo := invoice.NewRepository(a.db)
	notificationRepo := notification.NewRepository(a.db)
	companyRepo := erpcompany.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	authService := services.NewAuthService(
		userRepo,
		jwtService,
		a.tokens,
		a.mq,
		a.mCounter,
		a.logger,
		a.cfg.Auth,
		a.cfg.App.JWTTTL,
	)
	userService := services.NewUserService(userRepo, authService, a.mq, a.mCounter, a.logger)
	companyService := services.NewErpCompanyService(companyRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	alertService := services.NewAlertService(
		invoiceRepo,
		notificationRepo,
		a.mq,
		a.mCounter,
		a.logger,
		a.policy,
		a.alertLoc,
		a.cfg.Alerts.Concurrency,
	)
	dashboardService := services.NewDashboardService(userRepo, invoiceRepo, notificationRepo)
	reportService := services.NewReportService(a.storage, a.mCounter, a.logger, export.NewPDF(), export.NewXLSX())

	// controllers
	rest.NewAuthController(a.router, a.logger, userService, authService, jwtService, a.cfg.Auth.ExposeResetToken)
	rest.NewUserController(a.router, userService, companyService, a.logger, jwtService)
	rest.NewDashboardController(a.router, dashboardService, a.logger, jwtService)
	rest.NewInvoiceController(a.router, invoiceService, reportService, a.logger, jwtService)
	rest.NewNotificationController(a.router, notificationService, reportService, a.logger, jwtService)
	rest.NewAlertController(a.router, alertService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
