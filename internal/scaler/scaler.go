/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package scaler compensates for a reclaimed spot instance by bumping the
// desired capacity of a designated on-demand auto scaling group.
package scaler

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/go-logr/logr"

	"github.com/chaordic/lambda-spot-interruption/internal/metrics"
	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
	"github.com/chaordic/lambda-spot-interruption/pkg/awsutil"
)

// CapacityAdjustmentError is a failed desired-capacity bump. The handler
// logs it and reports overall success; the reclaim proceeds regardless.
type CapacityAdjustmentError struct {
	Group string
	Err   error
}

func (e *CapacityAdjustmentError) Error() string {
	return fmt.Sprintf("adjust capacity of %s: %v", e.Group, e.Err)
}

func (e *CapacityAdjustmentError) Unwrap() error {
	return e.Err
}

// Spec holds capacity compensation parameters for a single instance.
type Spec struct {
	// InstanceID is the interrupted instance, used for tag fallback lookup.
	InstanceID string
	// GroupName names the group to scale up. When empty the scaler reads
	// the asgOnDemand tag off the instance.
	GroupName string
}

// Outcome reports what the scale-up accomplished.
type Outcome struct {
	Group    string
	Previous int32
	Desired  int32
	// AtMax means the group was already at maximum capacity and was left
	// untouched.
	AtMax bool
	// Skipped means no group was configured or tagged for this instance.
	Skipped bool
}

// Client factories build per-invocation clients from assumed credentials.
type (
	AutoScalingFactory func(aws.Config) AutoScalingClient
	EC2Factory         func(aws.Config) awsutil.EC2Client
)

// Scaler increases the desired capacity of an on-demand group by one,
// clamped at the group's maximum.
type Scaler struct {
	asgFactory AutoScalingFactory
	ec2Factory EC2Factory
}

// New creates a Scaler with production AWS clients.
func New() *Scaler {
	return NewWithClients(
		func(cfg aws.Config) AutoScalingClient { return autoscaling.NewFromConfig(cfg) },
		func(cfg aws.Config) awsutil.EC2Client { return ec2.NewFromConfig(cfg) },
	)
}

// NewWithClients creates a Scaler with the given client factories.
func NewWithClients(asgFactory AutoScalingFactory, ec2Factory EC2Factory) *Scaler {
	return &Scaler{
		asgFactory: asgFactory,
		ec2Factory: ec2Factory,
	}
}

// ScaleUp resolves the target group and increments its desired capacity by
// exactly one. A group already at maximum is a no-op, not an error.
func (s *Scaler) ScaleUp(ctx context.Context, log logr.Logger, cfg aws.Config, spec Spec) (Outcome, error) {
	group, err := s.resolveGroup(ctx, log, cfg, spec)
	if err != nil {
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultError).Inc()
		return Outcome{}, err
	}
	if group == "" {
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultSkipped).Inc()
		return Outcome{Skipped: true}, nil
	}

	client := s.asgFactory(cfg)

	desc, err := client.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{group},
	})
	if err != nil {
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultError).Inc()
		return Outcome{}, &CapacityAdjustmentError{Group: group, Err: err}
	}
	if len(desc.AutoScalingGroups) == 0 {
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultError).Inc()
		return Outcome{}, &CapacityAdjustmentError{Group: group, Err: fmt.Errorf("auto scaling group not found")}
	}

	asg := desc.AutoScalingGroups[0]
	desired := aws.ToInt32(asg.DesiredCapacity)
	max := aws.ToInt32(asg.MaxSize)

	if desired >= max {
		log.Info("auto scaling group already at maximum capacity, leaving untouched",
			"group", group, "desired", desired, "max", max)
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultAtMax).Inc()
		return Outcome{Group: group, Previous: desired, Desired: desired, AtMax: true}, nil
	}

	_, err = client.UpdateAutoScalingGroup(ctx, &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(group),
		DesiredCapacity:      aws.Int32(desired + 1),
	})
	if err != nil {
		metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultError).Inc()
		return Outcome{}, &CapacityAdjustmentError{Group: group, Err: err}
	}

	log.Info("auto scaling group desired capacity increased",
		"group", group, "previous", desired, "desired", desired+1)
	metrics.CapacityAdjustmentTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	return Outcome{Group: group, Previous: desired, Desired: desired + 1}, nil
}

// resolveGroup returns the group to scale, or empty when none applies.
func (s *Scaler) resolveGroup(ctx context.Context, log logr.Logger, cfg aws.Config, spec Spec) (string, error) {
	if spec.GroupName != "" {
		return spec.GroupName, nil
	}

	group, found, err := awsutil.FindInstanceTag(ctx, s.ec2Factory(cfg), spec.InstanceID, wellknown.TagOnDemandASG)
	if err != nil {
		return "", &CapacityAdjustmentError{Group: "", Err: fmt.Errorf("describe instance tags: %w", err)}
	}
	if !found {
		log.Info("no on-demand auto scaling group configured or tagged, skipping capacity adjustment",
			"instanceID", spec.InstanceID)
		return "", nil
	}

	return group, nil
}
