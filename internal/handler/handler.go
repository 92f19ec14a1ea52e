/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package handler orchestrates the response to a spot interruption: validate
// the event, assume a role in the source account, drain the instance from
// its load balancers, and compensate the lost capacity.
package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-logr/logr"

	"github.com/chaordic/lambda-spot-interruption/internal/config"
	"github.com/chaordic/lambda-spot-interruption/internal/drainer"
	"github.com/chaordic/lambda-spot-interruption/internal/event"
	"github.com/chaordic/lambda-spot-interruption/internal/metrics"
	"github.com/chaordic/lambda-spot-interruption/internal/notifier"
	"github.com/chaordic/lambda-spot-interruption/internal/recovery"
	"github.com/chaordic/lambda-spot-interruption/internal/scaler"
	"github.com/chaordic/lambda-spot-interruption/pkg/awsutil"
)

// LoadBalancerDrainer removes an instance from its load balancers.
type LoadBalancerDrainer interface {
	Drain(ctx context.Context, log logr.Logger, cfg aws.Config, spec drainer.Spec) (drainer.Result, error)
}

// CapacityScaler bumps the desired capacity of an on-demand group.
type CapacityScaler interface {
	ScaleUp(ctx context.Context, log logr.Logger, cfg aws.Config, spec scaler.Spec) (scaler.Outcome, error)
}

// ConfigLoader loads the base AWS config for a region.
type ConfigLoader func(ctx context.Context, region string) (aws.Config, error)

// STSFactory builds an STS client from a base config.
type STSFactory func(aws.Config) awsutil.STSClient

// Handler processes one interruption event per invocation. It holds no
// state across invocations; assumed credentials are scoped to a single
// Handle call and discarded with it.
type Handler struct {
	cfg *config.Config
	log logr.Logger

	loadConfig ConfigLoader
	stsFactory STSFactory
	drainer    LoadBalancerDrainer
	scaler     CapacityScaler
	notifier   notifier.Notifier
}

// New creates a Handler with production AWS clients.
func New(cfg *config.Config, log logr.Logger) *Handler {
	var n notifier.Notifier
	if cfg.SlackWebhookURL != "" {
		n = notifier.NewSlackNotifier(cfg.SlackWebhookURL)
	}

	return NewWithDependencies(cfg, log, awsutil.LoadConfig, awsutil.NewSTSClient, drainer.New(), scaler.New(), n)
}

// NewWithDependencies creates a Handler with the given collaborators.
func NewWithDependencies(cfg *config.Config, log logr.Logger, loadConfig ConfigLoader, stsFactory STSFactory, d LoadBalancerDrainer, s CapacityScaler, n notifier.Notifier) *Handler {
	return &Handler{
		cfg:        cfg,
		log:        log,
		loadConfig: loadConfig,
		stsFactory: stsFactory,
		drainer:    d,
		scaler:     s,
		notifier:   n,
	}
}

// WithLogger returns a copy of the Handler bound to log. Collaborators are
// shared, so a Handler built at cold start can be reused across invocations
// with a per-invocation logger.
func (h *Handler) WithLogger(log logr.Logger) *Handler {
	out := *h
	out.log = log
	return &out
}

// Handle responds to one interruption event. Only event validation and role
// assumption are fatal; drain, capacity adjustment, and notification are
// best-effort because the termination proceeds regardless of their outcome.
func (h *Handler) Handle(ctx context.Context, ev event.InterruptionEvent) error {
	start := time.Now()
	action := string(ev.Detail.InstanceAction)

	if err := ev.Validate(); err != nil {
		metrics.InvocationTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}

	log := h.log.WithValues(
		"instanceID", ev.Detail.InstanceID,
		"account", ev.Account,
		"region", ev.Region,
	)

	defer func() {
		metrics.InvocationDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	}()

	if !ev.IsTermination() {
		log.Info("interruption does not terminate the instance, nothing to do", "action", action)
		metrics.InvocationTotal.WithLabelValues(action, metrics.ResultNoop).Inc()
		return nil
	}

	base, err := h.loadConfig(ctx, ev.Region)
	if err != nil {
		metrics.InvocationTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return fmt.Errorf("load AWS config: %w", err)
	}

	scoped, err := awsutil.AssumeRole(ctx, base, h.stsFactory(base), ev.Account, h.cfg.RoleName)
	if err != nil {
		log.Error(err, "role assumption failed, aborting", "role", h.cfg.RoleName)
		metrics.RoleAssumptionTotal.WithLabelValues(metrics.ResultError).Inc()
		metrics.InvocationTotal.WithLabelValues(action, metrics.ResultError).Inc()
		return err
	}
	metrics.RoleAssumptionTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	log.Info("instance is going down, draining")

	result, err := h.drainer.Drain(ctx, log, scoped, drainer.Spec{
		InstanceID:        ev.Detail.InstanceID,
		TargetGroupARNs:   h.cfg.TargetGroupARNs,
		LoadBalancerNames: h.cfg.LoadBalancerNames,
	})
	if err != nil {
		// The instance terminates either way; a failed drain is not worth
		// failing the invocation over.
		logBestEffortFailure(log, err, "drain failed, continuing with capacity adjustment")
	}

	outcome, err := h.scaler.ScaleUp(ctx, log, scoped, scaler.Spec{
		InstanceID: ev.Detail.InstanceID,
		GroupName:  h.cfg.OnDemandASGName,
	})
	if err != nil {
		logBestEffortFailure(log, err, "capacity adjustment failed, ignoring")
	}

	h.notify(ctx, log, ev, result, outcome)

	metrics.InvocationTotal.WithLabelValues(action, metrics.ResultSuccess).Inc()
	return nil
}

// logBestEffortFailure logs a non-fatal failure at a severity matching its
// classification: transient faults are expected noise and stay at info level,
// everything else is an error worth paging over.
func logBestEffortFailure(log logr.Logger, err error, msg string) {
	class := recovery.ClassifyError(err)
	if class == recovery.ErrorTransient {
		log.Info(msg, "classification", string(class), "reason", err.Error())
		return
	}
	log.Error(err, msg, "classification", string(class))
}

func (h *Handler) notify(ctx context.Context, log logr.Logger, ev event.InterruptionEvent, result drainer.Result, outcome scaler.Outcome) {
	if h.notifier == nil {
		return
	}

	summary := notifier.Summary{
		InstanceID: ev.Detail.InstanceID,
		Account:    ev.Account,
		Region:     ev.Region,
		Capacity:   capacitySummary(outcome),
	}
	for _, t := range result.Drained {
		summary.Drained = append(summary.Drained, t.String())
	}
	for _, t := range result.Failed {
		summary.Failed = append(summary.Failed, t.String())
	}

	if err := h.notifier.Notify(ctx, summary); err != nil {
		log.Error(err, "notification failed, ignoring")
	}
}

func capacitySummary(outcome scaler.Outcome) string {
	switch {
	case outcome.Skipped:
		return "no on-demand group configured"
	case outcome.AtMax:
		return fmt.Sprintf("%s already at maximum capacity (%d)", outcome.Group, outcome.Desired)
	case outcome.Group != "":
		return fmt.Sprintf("%s desired %d -> %d", outcome.Group, outcome.Previous, outcome.Desired)
	default:
		return ""
	}
}
