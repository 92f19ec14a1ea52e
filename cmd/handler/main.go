/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chaordic/lambda-spot-interruption/internal/config"
	"github.com/chaordic/lambda-spot-interruption/internal/event"
	"github.com/chaordic/lambda-spot-interruption/internal/handler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Built once at cold start so warm invocations reuse the same
	// collaborators, notably the notifier's HTTP client.
	h := handler.New(cfg, log)

	lambda.Start(func(ctx context.Context, ev event.InterruptionEvent) error {
		invLog := log
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			invLog = invLog.WithValues("awsRequestID", lc.AwsRequestID)
		}

		ctx, cancel := context.WithTimeout(ctx, cfg.HandlerTimeout)
		defer cancel()

		return h.WithLogger(invLog).Handle(ctx, ev)
	})
}

func newLogger(levelName string) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if level, err := zapcore.ParseLevel(levelName); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	zapLog, err := zapCfg.Build()
	if err != nil {
		return logr.Logger{}, err
	}

	return zapr.NewLogger(zapLog).WithName("spot-drainer"), nil
}
