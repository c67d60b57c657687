package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ribnuu/PERN-Task1-sub000/internal/config"
	"github.com/ribnuu/PERN-Task1-sub000/internal/pkg/db"
	"github.com/ribnuu/PERN-Task1-sub000/internal/pkg/log"
	"github.com/ribnuu/PERN-Task1-sub000/internal/repository"
	th "github.com/ribnuu/PERN-Task1-sub000/internal/transport/http"
	"github.com/ribnuu/PERN-Task1-sub000/internal/usecase"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pernapi",
		Short:         "Person records dashboard API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.Load())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), config.Load())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return migrate(cmd.Context(), config.Load())
			},
		},
	)
	return root
}

func setup(cfg config.Config) (*zap.Logger, *pgxpool.Pool, error) {
	logger, err := log.Init(cfg.Env, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	pool, err := db.NewPool(cfg.PGDSN, db.PoolOptions{MaxConns: cfg.DBMaxConns, ConnectTimeout: cfg.DBConnectTimeout})
	if err != nil {
		log.Error.Printf("db config err=%v dsn=%s", err, cfg.RedactedDSN())
		return nil, nil, err
	}
	return logger, pool, nil
}

func migrate(ctx context.Context, cfg config.Config) error {
	_, pool, err := setup(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer pool.Close()

	applied, err := db.Migrate(ctx, pool)
	if err != nil {
		log.Error.Printf("migrate err=%v", err)
		return err
	}
	log.Info.Printf("migrate ok applied=%v", applied)
	return nil
}

func serve(ctx context.Context, cfg config.Config) error {
	logger, pool, err := setup(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()
	defer pool.Close()
	log.Info.Printf("config %s", cfg)

	// The API starts without a reachable store; requests answer 503 until
	// it appears and, with AUTO_MIGRATE, until the schema is in place.
	storeUp := true
	if err := db.Ping(ctx, pool, cfg.DBConnectTimeout); err != nil {
		log.Warn.Printf("store unreachable at startup err=%v", err)
		storeUp = false
	}
	if storeUp && cfg.AutoMigrate {
		applied, err := db.Migrate(ctx, pool)
		if err != nil {
			log.Error.Printf("migrate err=%v", err)
			return err
		}
		log.Info.Printf("migrate ok applied=%v", applied)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		db.NewPoolCollector(pool),
	)

	repo := repository.NewPgPersonRepo(pool, cfg.DBAcquireTimeout)
	uc := usecase.NewPersonUC(repo)
	h := th.NewHandler(uc, cfg.BodyLimitBytes)
	r := th.NewRouter(h, th.RouterOptions{AllowOrigins: cfg.CORSAllow, Registry: reg, Logger: logger})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	if !storeUp && cfg.AutoMigrate {
		g.Go(func() error {
			migrateUntilDone(gctx, func(ctx context.Context) ([]string, error) {
				return db.Migrate(ctx, pool)
			}, cfg.MigrateRetryInterval)
			return nil
		})
	}
	g.Go(func() error {
		log.Info.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info.Printf("shutting down timeout=%s", cfg.ShutdownTimeout)
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		log.Error.Printf("server err=%v", err)
		return err
	}
	log.Info.Println("stopped")
	return nil
}

// migrateUntilDone calls migrate every interval until it succeeds or ctx ends.
func migrateUntilDone(ctx context.Context, migrate func(context.Context) ([]string, error), interval time.Duration) bool {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		applied, err := migrate(ctx)
		if err == nil {
			log.Info.Printf("migrate ok applied=%v", applied)
			return true
		}
		log.Warn.Printf("migrate retry in=%s err=%v", interval, err)
		select {
		case <-ctx.Done():
			return false
		case <-t.C:
		}
	}
}
