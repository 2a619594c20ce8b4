package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	graphql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/graphql-blog/config"
	"github.com/d60-Lab/graphql-blog/internal/api"
	"github.com/d60-Lab/graphql-blog/internal/graph"
	"github.com/d60-Lab/graphql-blog/internal/repository"
	"github.com/d60-Lab/graphql-blog/internal/service"
	"github.com/d60-Lab/graphql-blog/pkg/database"
	"github.com/d60-Lab/graphql-blog/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			panic(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db := must(database.InitDB(cfg))

	// repositories & services
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postService := service.NewPostService(userRepo, postRepo, categoryRepo)

	resolver := graph.NewResolver(userRepo, postRepo, categoryRepo, postService)
	schema := graphql.MustParseSchema(graph.Schema, resolver)

	router := api.NewRouter(cfg, schema, db)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.Int("port", cfg.Server.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
