package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/baybayin/internal/db"
	"github.com/jusunglee/baybayin/internal/health"
	"github.com/jusunglee/baybayin/internal/web/handlers"
	"github.com/jusunglee/baybayin/internal/web/middleware"
)

type Config struct {
	// RateLimit is the number of POST requests allowed per client IP per minute.
	RateLimit      int
	AllowedOrigins []string
}

type Router struct {
	repo     db.Repository
	log      *slog.Logger
	enqueuer handlers.Enqueuer
	cfg      Config
}

func NewRouter(repo db.Repository, log *slog.Logger, enqueuer handlers.Enqueuer, cfg Config) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 60
	}
	return &Router{
		repo:     repo,
		log:      log,
		enqueuer: enqueuer,
		cfg:      cfg,
	}
}

// Handler builds the API. The rate limiter's sweeper stops when ctx is done.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.repo, r.log)
	documentHandler := handlers.NewDocumentHandler(r.repo, r.log, r.enqueuer)

	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, time.Minute)

	read := func(h http.HandlerFunc, cache string) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl(cache),
		)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		)
	}

	mux.Handle("GET /health", middleware.Chain(health.NewHandler(r.repo, r.log), middleware.PrometheusMetrics()))

	mux.Handle("POST /api/v1/normalize", write(convertHandler.Normalize))
	mux.Handle("POST /api/v1/transliterate", write(convertHandler.Transliterate))
	mux.Handle("POST /api/v1/convert", write(convertHandler.Convert))
	mux.Handle("GET /api/v1/conversions", read(convertHandler.List, "public, s-maxage=5, max-age=0"))

	mux.Handle("POST /api/v1/documents", write(documentHandler.Create))
	mux.Handle("GET /api/v1/documents/{id}", read(documentHandler.Get, "no-store"))

	return middleware.CORS(r.cfg.AllowedOrigins)(mux)
}
