package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/obrasync/cashbox/internal/config"
	"github.com/obrasync/cashbox/internal/repository/pgrepo"
	"github.com/obrasync/cashbox/internal/service"
	"github.com/obrasync/cashbox/internal/transport/api"
	"github.com/obrasync/cashbox/internal/transport/notify"
	"github.com/obrasync/cashbox/pkg/uow"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	redisPingTimeout  = 3 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"runAddress":    a.Config.RunAddress,
		"migrationsDir": a.Config.MigrationsDir,
		"redis":         a.Config.RedisAddr,
		"webhook":       a.Config.NotifyWebhookURL,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.NewLogrusAuditLogger(a.Logger))
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	routerArgs := api.RouterArgs{
		Logger:          a.Logger,
		CashboxService:  services.CashboxService,
		ApprovalService: services.ApprovalService,
		HistoryService:  services.HistoryService,
		JWTSecretKey:    []byte(a.Config.JWTSecret),
		IdempotencyTTL:  a.Config.IdempotencyTTL,
	}
	if a.Config.RedisAddr != "" {
		rdb := a.initRedis(notifyCtx)
		defer func() {
			if closeErr := rdb.Close(); closeErr != nil {
				a.Logger.WithError(closeErr).Warn("closing redis client")
			}
		}()
		routerArgs.Redis = rdb
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           api.New(routerArgs),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	if a.Config.NotifyWebhookURL != "" {
		processor := notify.New(services.ApprovalService, a.Config.NotifyWebhookURL, a.Logger).
			SetWorkers(a.Config.NotifyWorkers).
			SetLimitPerIteration(a.Config.NotifyBatchSize)
		go processor.Run(notifyCtx)
	} else {
		a.Logger.Warn("notification webhook is not configured, explanation requests stay queued")
	}

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shErr := server.Shutdown(shutdownCtx); shErr != nil {
			a.Logger.WithError(shErr).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return fmt.Errorf("app run: %w", err)
	}
}

// initRedis создает клиента Redis. Недоступность Redis при старте не фатальна: идемпотентность
// в этом случае не работает, пока Redis не поднимется.
func (a *App) initRedis(ctx context.Context) *redis.Client {
	rdb := redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		a.Logger.WithError(err).Warn("redis is unavailable, idempotency keys are not enforced")
	}
	return rdb
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)
	if regErr := pgrepo.Register(unitOfWork); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}
	return unitOfWork, nil
}
