/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

// Package drainer removes an interrupted instance from the load balancers
// routing traffic to it.
package drainer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbv2types "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/go-logr/logr"
	"github.com/samber/lo"

	"github.com/chaordic/lambda-spot-interruption/internal/metrics"
	"github.com/chaordic/lambda-spot-interruption/internal/recovery"
	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
	"github.com/chaordic/lambda-spot-interruption/pkg/awsutil"
)

// Target kinds.
const (
	KindTargetGroup = "target-group"
	KindClassicELB  = "classic-elb"
)

// Target identifies one load balancing attachment of the instance: either a
// target group ARN or a classic load balancer name.
type Target struct {
	Kind string
	ID   string
}

func (t Target) String() string {
	return fmt.Sprintf("%s/%s", t.Kind, t.ID)
}

// DeregistrationError is a per-target deregistration rejection. The drainer
// logs it and moves on to the remaining targets; the instance disappears
// regardless, so there is nothing to retry against.
type DeregistrationError struct {
	Target Target
	Err    error
}

func (e *DeregistrationError) Error() string {
	return fmt.Sprintf("deregister %s: %v", e.Target, e.Err)
}

func (e *DeregistrationError) Unwrap() error {
	return e.Err
}

// Spec holds drain parameters for a single instance.
type Spec struct {
	// InstanceID is the interrupted instance.
	InstanceID string
	// TargetGroupARNs bypasses discovery when set.
	TargetGroupARNs []string
	// LoadBalancerNames bypasses discovery when set.
	LoadBalancerNames []string
}

// Result reports what the drain accomplished.
type Result struct {
	// Drained targets were successfully deregistered.
	Drained []Target
	// Failed targets were rejected by the service and logged.
	Failed []Target
}

// Client factories build per-invocation clients from assumed credentials.
type (
	ELBV2Factory       func(aws.Config) ELBV2Client
	ELBFactory         func(aws.Config) ELBClient
	AutoScalingFactory func(aws.Config) AutoScalingClient
	EC2Factory         func(aws.Config) awsutil.EC2Client
)

// Drainer locates the load balancers referencing an instance and
// deregisters it from each.
type Drainer struct {
	elbv2Factory ELBV2Factory
	elbFactory   ELBFactory
	asgFactory   AutoScalingFactory
	ec2Factory   EC2Factory
}

// New creates a Drainer with production AWS clients.
func New() *Drainer {
	return NewWithClients(
		func(cfg aws.Config) ELBV2Client { return elasticloadbalancingv2.NewFromConfig(cfg) },
		func(cfg aws.Config) ELBClient { return elasticloadbalancing.NewFromConfig(cfg) },
		func(cfg aws.Config) AutoScalingClient { return autoscaling.NewFromConfig(cfg) },
		func(cfg aws.Config) awsutil.EC2Client { return ec2.NewFromConfig(cfg) },
	)
}

// NewWithClients creates a Drainer with the given client factories.
func NewWithClients(elbv2Factory ELBV2Factory, elbFactory ELBFactory, asgFactory AutoScalingFactory, ec2Factory EC2Factory) *Drainer {
	return &Drainer{
		elbv2Factory: elbv2Factory,
		elbFactory:   elbFactory,
		asgFactory:   asgFactory,
		ec2Factory:   ec2Factory,
	}
}

// Drain deregisters the instance from every located target. Discovery
// failures abort with an error; per-target deregistration failures are
// logged independently and do not block the remaining targets.
func (d *Drainer) Drain(ctx context.Context, log logr.Logger, cfg aws.Config, spec Spec) (Result, error) {
	targets, err := d.locateTargets(ctx, log, cfg, spec)
	if err != nil {
		return Result{}, fmt.Errorf("locate targets: %w", err)
	}

	if len(targets) == 0 {
		// Instance may already be drained or was never behind a load
		// balancer. Not an error.
		log.Info("no load balancer references the instance, nothing to drain", "instanceID", spec.InstanceID)
		return Result{}, nil
	}

	elbv2Client := d.elbv2Factory(cfg)
	elbClient := d.elbFactory(cfg)

	var result Result
	for _, target := range targets {
		if err := d.deregister(ctx, elbv2Client, elbClient, target, spec.InstanceID); err != nil {
			derr := &DeregistrationError{Target: target, Err: err}
			// Transient faults are expected noise on a busy control plane
			// and do not warrant error-level logs.
			if class := recovery.ClassifyError(err); class == recovery.ErrorTransient {
				log.Info("deregistration failed with transient error, continuing with remaining targets",
					"instanceID", spec.InstanceID, "target", target.String(),
					"classification", string(class), "reason", derr.Error())
			} else {
				log.Error(derr, "deregistration rejected, continuing with remaining targets",
					"instanceID", spec.InstanceID, "target", target.String(),
					"classification", string(class))
			}
			metrics.DeregistrationTotal.WithLabelValues(target.Kind, metrics.ResultError).Inc()
			result.Failed = append(result.Failed, target)
			continue
		}

		log.Info("instance deregistered", "instanceID", spec.InstanceID, "target", target.String())
		metrics.DeregistrationTotal.WithLabelValues(target.Kind, metrics.ResultSuccess).Inc()
		result.Drained = append(result.Drained, target)
	}

	return result, nil
}

// locateTargets resolves the targets to drain. Explicitly configured targets
// win; otherwise discovery walks instance tag -> owning ASG -> attached
// target groups, falling back to a classic ELB scan when the group has none.
func (d *Drainer) locateTargets(ctx context.Context, log logr.Logger, cfg aws.Config, spec Spec) ([]Target, error) {
	if len(spec.TargetGroupARNs) > 0 || len(spec.LoadBalancerNames) > 0 {
		targets := lo.Map(spec.TargetGroupARNs, func(arn string, _ int) Target {
			return Target{Kind: KindTargetGroup, ID: arn}
		})
		return append(targets, lo.Map(spec.LoadBalancerNames, func(name string, _ int) Target {
			return Target{Kind: KindClassicELB, ID: name}
		})...), nil
	}

	ec2Client := d.ec2Factory(cfg)

	groupName, found, err := awsutil.FindInstanceTag(ctx, ec2Client, spec.InstanceID, wellknown.TagASGGroupName)
	if err != nil {
		return nil, fmt.Errorf("describe instance tags: %w", err)
	}
	if !found {
		log.Info("instance is not managed by an auto scaling group", "instanceID", spec.InstanceID)
		return nil, nil
	}

	log.V(1).Info("found owning auto scaling group", "instanceID", spec.InstanceID, "group", groupName)

	asgClient := d.asgFactory(cfg)

	tgs, err := asgClient.DescribeLoadBalancerTargetGroups(ctx, &autoscaling.DescribeLoadBalancerTargetGroupsInput{
		AutoScalingGroupName: aws.String(groupName),
	})
	if err != nil {
		return nil, fmt.Errorf("describe load balancer target groups: %w", err)
	}

	if len(tgs.LoadBalancerTargetGroups) == 0 {
		return d.locateClassicELBs(ctx, cfg, spec.InstanceID)
	}

	elbv2Client := d.elbv2Factory(cfg)

	var targets []Target
	for _, tg := range tgs.LoadBalancerTargetGroups {
		arn := aws.ToString(tg.LoadBalancerTargetGroupARN)

		health, err := elbv2Client.DescribeTargetHealth(ctx, &elasticloadbalancingv2.DescribeTargetHealthInput{
			TargetGroupArn: aws.String(arn),
		})
		if err != nil {
			return nil, fmt.Errorf("describe target health %s: %w", arn, err)
		}

		for _, desc := range health.TargetHealthDescriptions {
			if desc.Target != nil && aws.ToString(desc.Target.Id) == spec.InstanceID {
				targets = append(targets, Target{Kind: KindTargetGroup, ID: arn})
				break
			}
		}
	}

	return targets, nil
}

// locateClassicELBs scans classic load balancers for the instance.
func (d *Drainer) locateClassicELBs(ctx context.Context, cfg aws.Config, instanceID string) ([]Target, error) {
	elbClient := d.elbFactory(cfg)

	lbs, err := elbClient.DescribeLoadBalancers(ctx, &elasticloadbalancing.DescribeLoadBalancersInput{})
	if err != nil {
		return nil, fmt.Errorf("describe classic load balancers: %w", err)
	}

	var targets []Target
	for _, lb := range lbs.LoadBalancerDescriptions {
		for _, inst := range lb.Instances {
			if aws.ToString(inst.InstanceId) == instanceID {
				targets = append(targets, Target{Kind: KindClassicELB, ID: aws.ToString(lb.LoadBalancerName)})
				break
			}
		}
	}

	return targets, nil
}

func (d *Drainer) deregister(ctx context.Context, elbv2Client ELBV2Client, elbClient ELBClient, target Target, instanceID string) error {
	switch target.Kind {
	case KindTargetGroup:
		_, err := elbv2Client.DeregisterTargets(ctx, &elasticloadbalancingv2.DeregisterTargetsInput{
			TargetGroupArn: aws.String(target.ID),
			Targets: []elbv2types.TargetDescription{
				{Id: aws.String(instanceID)},
			},
		})
		return err
	case KindClassicELB:
		_, err := elbClient.DeregisterInstancesFromLoadBalancer(ctx, &elasticloadbalancing.DeregisterInstancesFromLoadBalancerInput{
			LoadBalancerName: aws.String(target.ID),
			Instances: []elbtypes.Instance{
				{InstanceId: aws.String(instanceID)},
			},
		})
		return err
	default:
		return fmt.Errorf("unknown target kind %q", target.Kind)
	}
}
