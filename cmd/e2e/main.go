// Command e2e drives the HTTP API end to end and checks every response
// against the in-process pipeline. Without --base-url it starts its own
// server on a temporary SQLite database.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/jusunglee/baybayin/internal/db/sqlite"
	"github.com/jusunglee/baybayin/internal/logger"
	"github.com/jusunglee/baybayin/internal/options"
	"github.com/jusunglee/baybayin/internal/pipeline"
	"github.com/jusunglee/baybayin/internal/web"
)

const sampleText = "bahay kubo\nfiesta sa nayon\nmga bata ng baryo"

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

func run() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("baybayin-e2e")
	var (
		baseURL = fs_.StringLong("base-url", "", "URL of a running server; empty starts one in process")
		timeout = fs_.DurationLong("timeout", 30*time.Second, "how long to wait for a document conversion")
	)
	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVarPrefix("E2E")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Phase 1: server
	if *baseURL == "" {
		log.Info("Phase 1: Starting in-process server...")
		url, shutdown, err := startServer(ctx, log)
		if err != nil {
			return err
		}
		defer shutdown()
		*baseURL = url
	} else {
		log.Info("Phase 1: Using running server", "base_url", *baseURL)
	}
	client := &http.Client{Timeout: 10 * time.Second}

	// Phase 2: health
	log.Info("Phase 2: Checking health...")
	var health map[string]string
	if err := call(client, http.MethodGet, *baseURL+"/health", nil, http.StatusOK, &health); err != nil {
		return err
	}
	if health["status"] != "ok" {
		return fmt.Errorf("unexpected health status: %q", health["status"])
	}

	// Phase 3: synchronous conversion
	log.Info("Phase 3: Converting text synchronously...")
	want, err := pipeline.New(pipeline.Convert, pipeline.Selectors{})
	if err != nil {
		return err
	}
	var converted struct {
		ID     int64  `json:"id"`
		Output string `json:"output"`
	}
	if err := call(client, http.MethodPost, *baseURL+"/api/v1/convert", map[string]string{"text": sampleText}, http.StatusOK, &converted); err != nil {
		return err
	}
	if converted.Output != want.Text(sampleText) {
		return fmt.Errorf("convert output %q, want %q", converted.Output, want.Text(sampleText))
	}
	log.Info("converted", "id", converted.ID, "output", converted.Output)

	// Phase 4: asynchronous document
	log.Info("Phase 4: Submitting document...")
	var doc struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
		Output string `json:"output"`
		Error  string `json:"error"`
	}
	if err := call(client, http.MethodPost, *baseURL+"/api/v1/documents", map[string]string{"text": sampleText, "script": "traditional"}, http.StatusAccepted, &doc); err != nil {
		return err
	}

	deadline := time.Now().Add(*timeout)
	for doc.Status == "pending" {
		if time.Now().After(deadline) {
			return fmt.Errorf("document %d still pending after %s", doc.ID, *timeout)
		}
		time.Sleep(500 * time.Millisecond)
		if err := call(client, http.MethodGet, fmt.Sprintf("%s/api/v1/documents/%d", *baseURL, doc.ID), nil, http.StatusOK, &doc); err != nil {
			return err
		}
	}
	if doc.Status != "done" {
		return fmt.Errorf("document %d ended as %s: %s", doc.ID, doc.Status, doc.Error)
	}
	traditional, err := pipeline.New(pipeline.Convert, pipeline.Selectors{
		TransliterationFlags: options.TransliterationFlags{Script: "traditional"},
	})
	if err != nil {
		return err
	}
	if doc.Output != traditional.Text(sampleText) {
		return fmt.Errorf("document output %q, want %q", doc.Output, traditional.Text(sampleText))
	}
	log.Info("document converted", "id", doc.ID)

	// Phase 5: conversion log
	log.Info("Phase 5: Reading conversion log...")
	var page struct {
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := call(client, http.MethodGet, *baseURL+"/api/v1/conversions?limit=5", nil, http.StatusOK, &page); err != nil {
		return err
	}
	if page.Pagination.Total < 2 {
		return fmt.Errorf("conversion log has %d entries, want at least 2", page.Pagination.Total)
	}
	return nil
}

func startServer(ctx context.Context, log *slog.Logger) (string, func(), error) {
	dir, err := os.MkdirTemp("", "baybayin-e2e-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}

	repo, err := sqlite.New(ctx, filepath.Join(dir, "e2e.db"))
	if err != nil {
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("creating temp SQLite: %w", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		repo.Close()
		os.RemoveAll(dir)
		return "", nil, fmt.Errorf("listening: %w", err)
	}

	router := web.NewRouter(repo, log, web.NewInlineEnqueuer(web.NewDocumentConverter(repo, log)), web.Config{})
	server := &http.Server{Handler: router.Handler(ctx), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		repo.Close()
		os.RemoveAll(dir)
	}
	return "http://" + ln.Addr().String(), shutdown, nil
}

func call(client *http.Client, method, url string, body any, wantStatus int, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s %s: status %d, want %d", method, url, resp.StatusCode, wantStatus)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", url, err)
	}
	return nil
}
