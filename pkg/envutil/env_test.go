/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package envutil

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue string
		expected     string
	}{
		{
			name:         "returns env value when set",
			envKey:       "TEST_STRING",
			envValue:     "custom-value",
			defaultValue: "default-value",
			expected:     "custom-value",
		},
		{
			name:         "returns default when env is empty",
			envKey:       "TEST_STRING_EMPTY",
			envValue:     "",
			defaultValue: "default-value",
			expected:     "default-value",
		},
		{
			name:         "returns default when env is not set",
			envKey:       "TEST_STRING_UNSET",
			envValue:     "",
			defaultValue: "default-value",
			expected:     "default-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.envKey, tt.envValue)
			}

			result := GetString(tt.envKey, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetString() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		expected []string
	}{
		{
			name:     "single value",
			envKey:   "TEST_SLICE_SINGLE",
			envValue: "arn:aws:elasticloadbalancing:us-east-1:123456789012:targetgroup/web/abc",
			expected: []string{"arn:aws:elasticloadbalancing:us-east-1:123456789012:targetgroup/web/abc"},
		},
		{
			name:     "multiple values with whitespace",
			envKey:   "TEST_SLICE_MULTI",
			envValue: "a, b ,c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty entries dropped",
			envKey:   "TEST_SLICE_EMPTY_ENTRIES",
			envValue: "a,,b,",
			expected: []string{"a", "b"},
		},
		{
			name:     "unset returns nil",
			envKey:   "TEST_SLICE_UNSET",
			envValue: "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.envKey, tt.envValue)
			}

			result := GetStringSlice(tt.envKey)

			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("GetStringSlice() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue time.Duration
		expected     time.Duration
	}{
		{
			name:         "valid duration",
			envKey:       "TEST_DURATION_VALID",
			envValue:     "90s",
			defaultValue: time.Minute,
			expected:     90 * time.Second,
		},
		{
			name:         "invalid duration returns default",
			envKey:       "TEST_DURATION_INVALID",
			envValue:     "not-a-duration",
			defaultValue: time.Minute,
			expected:     time.Minute,
		},
		{
			name:         "unset returns default",
			envKey:       "TEST_DURATION_UNSET",
			envValue:     "",
			defaultValue: time.Minute,
			expected:     time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.envKey, tt.envValue)
			}

			result := GetDuration(tt.envKey, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}
