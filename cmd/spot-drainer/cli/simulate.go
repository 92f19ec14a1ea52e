/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chaordic/lambda-spot-interruption/internal/config"
	"github.com/chaordic/lambda-spot-interruption/internal/event"
	"github.com/chaordic/lambda-spot-interruption/internal/handler"
	"github.com/chaordic/lambda-spot-interruption/internal/metrics"
)

// newSimulateCommand creates the "simulate" command.
func newSimulateCommand() *cobra.Command {
	var (
		eventPath   string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a recorded interruption event against real AWS",
		Long: "Replay a recorded EventBridge interruption event against real AWS\n" +
			"using the same code path as the Lambda handler. Configuration is\n" +
			"read from the environment exactly as in Lambda.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			raw, err := os.ReadFile(eventPath)
			if err != nil {
				return fmt.Errorf("read event file: %w", err)
			}

			var ev event.InterruptionEvent
			if err := json.Unmarshal(raw, &ev); err != nil {
				return fmt.Errorf("decode event file: %w", err)
			}

			zapLog, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			log := zapr.NewLogger(zapLog).WithName("simulate")

			if srv := newMetricsServer(metricsAddr); srv != nil {
				log.Info("serving metrics", "addr", metricsAddr, "path", "/metrics")
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error(err, "metrics server stopped")
					}
				}()
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.HandlerTimeout)
			defer cancel()

			return handler.New(cfg, log).Handle(ctx, ev)
		},
	}

	cmd.Flags().StringVar(&eventPath, "event", "event.json", "Path to a recorded interruption event (JSON)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on (disabled when empty)")

	return cmd
}

// newMetricsServer builds the /metrics server, or nil when addr is empty.
func newMetricsServer(addr string) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	return &http.Server{Addr: addr, Handler: mux}
}
