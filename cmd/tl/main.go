// Command tl transliterates Filipino Latin text into Baybayin, one line at a time.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jusunglee/baybayin/internal/cli"
	"github.com/jusunglee/baybayin/internal/logger"
	"github.com/jusunglee/baybayin/internal/pipeline"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Run(ctx, log, "tl", pipeline.Transliterate, os.Args[1:])
}
