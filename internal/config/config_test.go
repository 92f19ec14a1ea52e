/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
)

func TestLoad_MissingRoleName(t *testing.T) {
	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), wellknown.EnvRoleName)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(wellknown.EnvRoleName, "spot-drainer")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "spot-drainer", cfg.RoleName)
	assert.Empty(t, cfg.OnDemandASGName)
	assert.Nil(t, cfg.TargetGroupARNs)
	assert.Nil(t, cfg.LoadBalancerNames)
	assert.Empty(t, cfg.SlackWebhookURL)
	assert.Equal(t, wellknown.DefaultHandlerTimeout, cfg.HandlerTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FullEnvironment(t *testing.T) {
	t.Setenv(wellknown.EnvRoleName, "spot-drainer")
	t.Setenv(wellknown.EnvOnDemandASGName, "web-asg")
	t.Setenv(wellknown.EnvTargetGroupARNs, "arn:tg/one, arn:tg/two")
	t.Setenv(wellknown.EnvLoadBalancerNames, "classic-a")
	t.Setenv(wellknown.EnvSlackWebhookURL, "https://hooks.slack.com/services/T/B/x")
	t.Setenv(wellknown.EnvHandlerTimeout, "90s")
	t.Setenv(wellknown.EnvLogLevel, "debug")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "web-asg", cfg.OnDemandASGName)
	assert.Equal(t, []string{"arn:tg/one", "arn:tg/two"}, cfg.TargetGroupARNs)
	assert.Equal(t, []string{"classic-a"}, cfg.LoadBalancerNames)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/x", cfg.SlackWebhookURL)
	assert.Equal(t, 90*time.Second, cfg.HandlerTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}
