/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package wellknown centralizes environment variable names, tag keys,
// and defaults shared across the handler.
package wellknown

import "time"

// Environment variables read at cold start.
const (
	EnvRoleName          = "ROLE_NAME"
	EnvOnDemandASGName   = "ON_DEMAND_ASG_NAME"
	EnvTargetGroupARNs   = "TARGET_GROUP_ARNS"
	EnvLoadBalancerNames = "LOAD_BALANCER_NAMES"
	EnvSlackWebhookURL   = "SLACK_WEBHOOK_URL"
	EnvHandlerTimeout    = "HANDLER_TIMEOUT"
	EnvLogLevel          = "LOG_LEVEL"
)

// EC2 instance tags consulted during discovery.
const (
	// TagASGGroupName is set by the Auto Scaling service on every instance
	// it manages.
	TagASGGroupName = "aws:autoscaling:groupName"

	// TagOnDemandASG names the on-demand group that absorbs capacity lost
	// to spot reclaims. Operators set it on spot instances.
	TagOnDemandASG = "asgOnDemand"
)

const (
	// RoleSessionNamePrefix prefixes every STS role session name.
	RoleSessionNamePrefix = "spot-drainer"

	// DefaultHandlerTimeout bounds a single invocation. The Lambda deadline
	// still applies on top of this.
	DefaultHandlerTimeout = 60 * time.Second

	// DetailTypeSpotInterruption is the EventBridge detail-type this
	// handler is subscribed to.
	DetailTypeSpotInterruption = "EC2 Spot Instance Interruption Warning"
)
