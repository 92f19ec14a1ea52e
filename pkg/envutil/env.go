/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package envutil

import (
	"os"
	"strings"
	"time"
)

// GetString returns the environment variable value if set and non-empty, otherwise returns the default value.
func GetString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetStringSlice returns the environment variable value split on commas,
// with surrounding whitespace trimmed and empty entries dropped. Returns nil
// when the variable is unset or empty.
func GetStringSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDuration returns the environment variable value as time.Duration if set and valid, otherwise returns the default value.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
