package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/db/postgres"
	"github.com/jusunglee/baybayin/internal/db/sqlite"
	"github.com/jusunglee/baybayin/internal/logger"
	"github.com/jusunglee/baybayin/internal/web"
	"github.com/jusunglee/baybayin/internal/web/handlers"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("baybayin-web")

	var (
		port           = fs_.Int64Long("port", 3000, "HTTP server port")
		databaseURL    = fs_.StringLong("database-url", "sqlite://baybayin.db", "sqlite://<path> or a PostgreSQL connection URL")
		rateLimit      = fs_.Int64Long("rate-limit", 60, "POST requests allowed per client IP per minute")
		allowedOrigins = fs_.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
		workers        = fs_.Int64Long("workers", 2, "concurrent document conversions in this process, 0 to leave them to cmd/worker (PostgreSQL only)")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var (
		repo     db.Repository
		enqueuer handlers.Enqueuer
	)

	if isPostgres(*databaseURL) {
		pg, err := postgres.New(ctx, *databaseURL)
		if err != nil {
			return fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		defer pg.Close()
		log.InfoContext(ctx, "connected to PostgreSQL database")

		riverClient, err := web.NewRiverClient(ctx, pg.Pool(), pg, log, int(*workers))
		if err != nil {
			return err
		}

		g.Go(func() error {
			pg.ExportPoolStats(gctx, 15*time.Second)
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			if *workers <= 0 {
				return nil
			}
			// Finish in-flight conversions.
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := riverClient.Stop(stopCtx); err != nil {
				log.Error("river client stop error", "error", err)
			}
			return nil
		})

		repo = pg
		enqueuer = web.NewRiverEnqueuer(riverClient)
	} else {
		path := strings.TrimPrefix(*databaseURL, "sqlite://")
		lite, err := sqlite.New(ctx, path)
		if err != nil {
			return fmt.Errorf("opening SQLite database: %w", err)
		}
		defer lite.Close()
		log.InfoContext(ctx, "opened SQLite database", "path", path)

		repo = lite
		enqueuer = web.NewInlineEnqueuer(web.NewDocumentConverter(lite, log))
	}

	router := web.NewRouter(repo, log, enqueuer, web.Config{
		RateLimit:      int(*rateLimit),
		AllowedOrigins: splitOrigins(*allowedOrigins),
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler(gctx))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g.Go(func() error {
		log.InfoContext(gctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.InfoContext(gctx, "shutting down gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
