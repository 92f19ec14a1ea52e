/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// InvocationTotal counts handler invocations by instance action and outcome
	InvocationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_drainer_invocation_total",
			Help: "Total number of interruption events handled",
		},
		[]string{"action", "outcome"},
	)

	// InvocationDuration tracks end-to-end handler duration
	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spot_drainer_invocation_duration_seconds",
			Help:    "Duration of interruption event handling",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~51s
		},
		[]string{"action"},
	)

	// DeregistrationTotal counts per-target deregistration attempts
	DeregistrationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_drainer_deregistration_total",
			Help: "Total number of load balancer target deregistrations",
		},
		[]string{"kind", "result"},
	)

	// CapacityAdjustmentTotal counts ASG desired-capacity bumps
	CapacityAdjustmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_drainer_capacity_adjustment_total",
			Help: "Total number of auto scaling group capacity adjustments",
		},
		[]string{"result"},
	)

	// RoleAssumptionTotal counts cross-account role assumptions
	RoleAssumptionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spot_drainer_role_assumption_total",
			Help: "Total number of cross-account role assumptions",
		},
		[]string{"result"},
	)
)

// Handler returns an HTTP handler exposing the registered metrics in the
// Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome and result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultSkipped = "skipped"
	ResultNoop    = "noop"
	ResultAtMax   = "at_max"
)
