package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogproto "file-catalog/api/catalogproto/proto-generate"
	"file-catalog/internal/MinIO"
	"file-catalog/internal/config"
	"file-catalog/internal/handler/catalogHandler"
	"file-catalog/internal/handler/httpHandler"
	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
	"file-catalog/internal/repository/catalogRepo"
	"file-catalog/internal/repository/notifyRepo"
	"file-catalog/internal/repository/revokedRepo"
	"file-catalog/internal/repository/userRepo"
	"file-catalog/internal/service/authService"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"
	"file-catalog/pkg/database/postgres"
	"file-catalog/pkg/database/redis"
	"file-catalog/pkg/logger"
	"file-catalog/pkg/metrics"
	"file-catalog/pkg/middleware"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the env config file")

	return cmd
}

func runServe(ctx context.Context, cfg *config.CatalogConfig) error {
	ctx, err := logger.New(ctx, cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.GetLogger(ctx)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	urls := catalogInfo.NewURLBuilder(cfg.DistributionBaseURL)
	m := metrics.New()
	deps := catalogService.Deps{
		Users:   user.NewDirectory(user.DemoUsers()),
		Metrics: m,
		Logger:  log,
	}

	if cfg.PersistPostgres {
		pool, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer pool.Close()

		items := catalogRepo.New(pool)
		if err := items.Migrate(ctx); err != nil {
			return err
		}
		users := userRepo.New(pool)
		if err := users.Migrate(ctx); err != nil {
			return err
		}
		if err := users.SeedIfEmpty(ctx, user.DemoUsers()); err != nil {
			return err
		}
		deps.Repo = items
		deps.Users = users
		log.Info("postgres persistence enabled", zap.String("host", cfg.Postgres.Host))
	}

	var revoked authService.Revocations
	if cfg.UseRedis {
		client := redis.New(cfg.Redis)
		defer client.Close()
		if err := redis.Ping(ctx, client); err != nil {
			return err
		}
		notifier := notifyRepo.New(client, cfg.NotifyHistory)
		deps.Notifier = notifier
		revoked = revokedRepo.New(client)

		go func() {
			err := notifier.Listen(ctx, func(n catalogInfo.UpdateNotification) {
				log.Info("update published",
					zap.String("item_id", n.ItemID),
					zap.String("version_id", n.VersionID),
					zap.String("filename", n.Filename),
				)
			})
			if err != nil {
				log.Warn("notification listener stopped", zap.Error(err))
			}
		}()
	}

	if cfg.UseMinIO {
		blobs, err := MinIO.New(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		deps.Blobs = blobs
	}

	items, err := catalogService.LoadInitialItems(ctx, deps.Repo, urls)
	if err != nil {
		return err
	}
	deps.Store = store.New(items, store.WithURLBuilder(urls))
	svc := catalogService.New(deps)
	auth := authService.New(cfg.JWTSecret, cfg.TokenTTL, revoked)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.LoggingInterceptor(log, m),
			middleware.AuthInterceptor(auth),
		),
		grpc.ChainStreamInterceptor(middleware.StreamAuthInterceptor(auth)),
	)
	catalogproto.RegisterCatalogServiceServer(grpcServer, catalogHandler.New(svc))

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCPort, err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           httpHandler.NewServer(svc, auth, log, m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("grpc server started", zap.String("port", cfg.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server: %w", err)
		}
	}()
	go func() {
		log.Info("http server started", zap.String("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		log.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	log.Info("server stopped")
	return err
}
