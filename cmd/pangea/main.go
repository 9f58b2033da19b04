package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/YusovID/pangea-backend/internal/auth"
	"github.com/YusovID/pangea-backend/internal/cache"
	"github.com/YusovID/pangea-backend/internal/config"
	"github.com/YusovID/pangea-backend/internal/repository/postgres"
	"github.com/YusovID/pangea-backend/internal/service"
	myhttp "github.com/YusovID/pangea-backend/internal/transport/http"
	"github.com/YusovID/pangea-backend/pkg/logger/sl"
	"github.com/YusovID/pangea-backend/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting pangea-backend", slog.String("env", cfg.Env))

	db, err := postgres.NewDB(cfg.Postgres, log)
	if err != nil {
		return fmt.Errorf("failed to init db: %w", err)
	}
	defer func() {
		if err := db.DB().Close(); err != nil {
			log.Error("db close failed", sl.Err(err))
		}
	}()

	problemCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		// The catalog still works from the database alone.
		log.Warn("redis unavailable, problem cache disabled", sl.Err(err))
		problemCache = cache.Noop{}
	}
	if closer, ok := problemCache.(io.Closer); ok {
		defer closer.Close()
	}

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	if verifier == nil {
		log.Warn("auth.jwt_secret is empty, API is not protected")
	}

	sqlDB := db.DB()
	instanceRepo := postgres.NewProblemInstanceRepository(sqlDB, log)
	subtaskRepo := postgres.NewSubtaskInstanceRepository(sqlDB, log)

	srv := myhttp.NewServer(log, cfg.Server.BasePath, verifier, myhttp.Services{
		Instances:   service.NewProblemInstanceService(sqlDB, sqlDB, log, instanceRepo),
		Subtasks:    service.NewSubtaskInstanceService(sqlDB, sqlDB, log, instanceRepo, subtaskRepo),
		Discussions: service.NewDiscussionService(log, postgres.NewDiscussionRepository(sqlDB, log)),
		Problems:    service.NewProblemService(log, postgres.NewProblemRepository(sqlDB, log), problemCache),
		Contact:     service.NewContactService(log, postgres.NewContactRepository(sqlDB, log)),
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go startServer(log, httpServer, errChan)

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
