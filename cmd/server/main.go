package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cvflow/cvparse/internal/api"
	"github.com/cvflow/cvparse/internal/config"
	"github.com/cvflow/cvparse/internal/nlp"
	"github.com/cvflow/cvparse/internal/pipeline"
	"github.com/cvflow/cvparse/internal/resume"
	"github.com/cvflow/cvparse/internal/sink"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var aug nlp.Augmenter = nlp.Noop{}
	if cfg.NLPEnabled {
		aug = nlp.NewProse(log)
	}

	parser := resume.NewParser(aug, log)
	stats := resume.NewStats(time.Hour)

	var sc *sink.Client
	if cfg.SinkURL != "" {
		sc = sink.NewClient(cfg.SinkURL, cfg.SinkAPIKey)
	}

	orch := pipeline.NewOrchestrator(cfg, parser, stats, sc, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, parser, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if sc != nil {
			sc.Close()
		}
	}()

	log.Info("starting cvparse", "port", cfg.Port, "nlp_enabled", cfg.NLPEnabled)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
