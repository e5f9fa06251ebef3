package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trustlend/internal/adapter/ageoracle"
	"trustlend/internal/adapter/eventsink"
	httpadp "trustlend/internal/adapter/http"
	axmw "trustlend/internal/adapter/middleware"
	"trustlend/internal/adapter/repository/gormrepo"
	"trustlend/internal/config"
	domainTrust "trustlend/internal/domain/trust"
	"trustlend/internal/infrastructure/cache"
	"trustlend/internal/infrastructure/db"
	"trustlend/internal/usecase"
	"trustlend/internal/usecase/loan"
	"trustlend/internal/usecase/platform"
	"trustlend/internal/usecase/staking"
	"trustlend/internal/usecase/trust"
	"trustlend/pkg/id"
	"trustlend/pkg/monitor"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	var (
		port    string
		migrate bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.AppPort = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, migrate)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port; overrides APP_PORT")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run schema migration before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, migrate bool) error {
	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return err
	}
	defer closeDB(gdb)

	if migrate {
		if err := gdb.WithContext(ctx).AutoMigrate(gormrepo.Models()...); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	deps := usecase.Deps{
		UoW:     gormrepo.NewGormUoW(gdb),
		Reads:   gormrepo.NewRepos(gdb),
		Events:  eventsink.Multi{eventsink.NewLog(zap.L()), eventsink.NewRedisStream(rdb, cfg.EventStream, cfg.EventStreamMaxLen)},
		Metrics: monitor.New(prometheus.DefaultRegisterer),
	}

	e := newEcho()

	var age domainTrust.AgeOracle
	switch cfg.WalletAgeMode {
	case config.WalletAgeRedis:
		firstSeen := ageoracle.NewFirstSeen(rdb, nil)
		e.Use(axmw.ActivityMiddleware(firstSeen))
		age = firstSeen
	default:
		age = ageoracle.Fixed{Age: cfg.WalletAgeFallback()}
	}
	e.Use(axmw.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))

	health := httpadp.NewHandler().
		WithCheck("db", func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}).
		WithCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })

	httpadp.Handlers{
		Health:    health,
		Platforms: httpadp.NewPlatformHandler(platform.NewUsecase(deps)),
		Trust:     httpadp.NewTrustHandler(trust.NewUsecase(deps, age)),
		Loans:     httpadp.NewLoanHandler(loan.NewUsecase(deps)),
		Staking:   httpadp.NewStakingHandler(staking.NewUsecase(deps)),
		Accounts:  httpadp.NewAccountHandler(deps.Reads.Ledger),
	}.Mount(e, cfg.LedgerFaucet)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.LedgerFaucet {
		zap.L().Warn("ledger faucet enabled; accounts can be credited over HTTP")
	}

	return run(ctx, e, ":"+cfg.AppPort)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				fields := []zap.Field{
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
				}
				if v.Error != nil {
					zap.L().Warn("request", append(fields, zap.Error(v.Error))...)
					return nil
				}
				zap.L().Info("request", fields...)
				return nil
			},
		}),
	)
	return e
}

func run(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func closeDB(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		zap.L().Warn("close db", zap.Error(err))
	}
}
