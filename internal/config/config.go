/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package config loads handler configuration from the environment once per
// process lifetime.
package config

import (
	"fmt"
	"time"

	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
	"github.com/chaordic/lambda-spot-interruption/pkg/envutil"
)

// Config holds handler configuration.
type Config struct {
	RoleName          string        // Role to assume in the event's account (required)
	OnDemandASGName   string        // ASG to scale up; falls back to the asgOnDemand instance tag
	TargetGroupARNs   []string      // Explicit target groups, bypassing discovery
	LoadBalancerNames []string      // Explicit classic ELBs, bypassing discovery
	SlackWebhookURL   string        // Optional drain outcome notification
	HandlerTimeout    time.Duration // Per-invocation deadline
	LogLevel          string        // zap level name
}

// Load reads configuration from the environment. It fails when ROLE_NAME is
// unset since the handler cannot do anything without a role to assume.
func Load() (*Config, error) {
	cfg := &Config{
		RoleName:          envutil.GetString(wellknown.EnvRoleName, ""),
		OnDemandASGName:   envutil.GetString(wellknown.EnvOnDemandASGName, ""),
		TargetGroupARNs:   envutil.GetStringSlice(wellknown.EnvTargetGroupARNs),
		LoadBalancerNames: envutil.GetStringSlice(wellknown.EnvLoadBalancerNames),
		SlackWebhookURL:   envutil.GetString(wellknown.EnvSlackWebhookURL, ""),
		HandlerTimeout:    envutil.GetDuration(wellknown.EnvHandlerTimeout, wellknown.DefaultHandlerTimeout),
		LogLevel:          envutil.GetString(wellknown.EnvLogLevel, "info"),
	}

	if cfg.RoleName == "" {
		return nil, fmt.Errorf("%s is required", wellknown.EnvRoleName)
	}

	return cfg, nil
}
