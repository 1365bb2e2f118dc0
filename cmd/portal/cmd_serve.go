package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/expotrade/client-portal/internal/api"
	"github.com/expotrade/client-portal/internal/api/handler"
	"github.com/expotrade/client-portal/internal/app"
	"github.com/expotrade/client-portal/internal/infrastructure/db/memory"
	"github.com/expotrade/client-portal/internal/infrastructure/db/mongo"
	"github.com/expotrade/client-portal/internal/infrastructure/db/redis"
	"github.com/expotrade/client-portal/internal/pkg/config"
	"github.com/expotrade/client-portal/pkg/logger"
)

const serviceName = "client-portal"

// portal serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

// portal routes — print the route table.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &config.Config{APIPrefix: api.DefaultAPIPrefix}
		if loaded, err := config.Load(cmd.Context()); err == nil {
			cfg = loaded
		}
		e := app.NewServer(cfg, app.MemoryRepositories(memory.NewStore()), zerolog.Nop(), app.Options{})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH")
		fmt.Fprintln(w, "------\t----")
		for _, r := range api.Routes(e) {
			fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
		}
		return w.Flush()
	},
}

func serve(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	readiness := map[string]handler.HealthCheck{}
	var repos app.Repositories

	switch cfg.StoreDriver {
	case config.StoreMemory:
		log.Warn().Msg("using in-memory store; data is lost on exit")
		repos = app.MemoryRepositories(memory.NewStore())
	default:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongo disconnect")
			}
		}()
		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		repos = app.MongoRepositories(db)
		readiness["mongodb"] = func(ctx context.Context) error {
			return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	opts := app.Options{Readiness: readiness}
	if cfg.RateLimit.FormLimit > 0 {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		opts.Limiter = redis.NewFormLimiter(rdb, cfg.RateLimit.FormLimit, cfg.RateLimit.FormWindow)
		readiness["redis"] = func(ctx context.Context) error { return pingRedis(ctx, rdb) }
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	e := app.NewServer(cfg, repos, log, opts)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("prefix", cfg.APIPrefix).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func pingRedis(ctx context.Context, rdb *goredis.Client) error {
	return rdb.Ping(ctx).Err()
}
