/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package event defines the EC2 Spot Instance Interruption Warning event
// as delivered by EventBridge.
//
// Example payload:
//
//	{
//	    "version": "0",
//	    "id": "12345678-1234-1234-1234-123456789012",
//	    "detail-type": "EC2 Spot Instance Interruption Warning",
//	    "source": "aws.ec2",
//	    "account": "123456789012",
//	    "time": "yyyy-mm-ddThh:mm:ssZ",
//	    "region": "us-east-2",
//	    "resources": ["arn:aws:ec2:us-east-2:123456789012:instance/i-1234567890abcdef0"],
//	    "detail": {
//	        "instance-id": "i-1234567890abcdef0",
//	        "instance-action": "terminate"
//	    }
//	}
//
// See https://docs.aws.amazon.com/AWSEC2/latest/UserGuide/spot-interruptions.html
package event

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedEvent indicates the incoming event is missing required fields.
// Failures wrapping it are fatal and surface to the Lambda runtime before any
// AWS call is made.
var ErrMalformedEvent = errors.New("malformed interruption event")

// InstanceAction is the action EC2 will take on the spot instance.
type InstanceAction string

const (
	ActionTerminate InstanceAction = "terminate"
	ActionStop      InstanceAction = "stop"
	ActionHibernate InstanceAction = "hibernate"
)

// InterruptionEvent is the EventBridge envelope for a spot interruption
// warning. Unrecognized fields are ignored by encoding/json.
type InterruptionEvent struct {
	Version    string             `json:"version"`
	ID         string             `json:"id"`
	DetailType string             `json:"detail-type"`
	Source     string             `json:"source"`
	Account    string             `json:"account"`
	Time       time.Time          `json:"time"`
	Region     string             `json:"region"`
	Resources  []string           `json:"resources"`
	Detail     InterruptionDetail `json:"detail"`
}

// InterruptionDetail carries the instance-level fields of the warning.
type InterruptionDetail struct {
	InstanceID     string         `json:"instance-id"`
	InstanceAction InstanceAction `json:"instance-action"`
}

// Validate checks that the fields the handler depends on are present.
func (e *InterruptionEvent) Validate() error {
	if e.Account == "" {
		return fmt.Errorf("%w: missing account", ErrMalformedEvent)
	}
	if e.Detail.InstanceID == "" {
		return fmt.Errorf("%w: missing detail.instance-id", ErrMalformedEvent)
	}
	if e.Detail.InstanceAction == "" {
		return fmt.Errorf("%w: missing detail.instance-action", ErrMalformedEvent)
	}
	return nil
}

// IsTermination reports whether this interruption reclaims the instance.
// Only terminations trigger the drain; stop and hibernate keep the instance
// around and it may rejoin its target groups on resume.
func (e *InterruptionEvent) IsTermination() bool {
	return e.Detail.InstanceAction == ActionTerminate
}
