package drainer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// ELBV2Client is the interface for AWS ELBv2 (ALB/NLB) operations.
// It defines the minimal set of API methods needed by the drainer.
type ELBV2Client interface {
	// DescribeTargetHealth describes the health of a target group's targets.
	DescribeTargetHealth(
		ctx context.Context,
		params *elasticloadbalancingv2.DescribeTargetHealthInput,
		optFns ...func(*elasticloadbalancingv2.Options),
	) (*elasticloadbalancingv2.DescribeTargetHealthOutput, error)

	// DeregisterTargets removes targets from a target group.
	DeregisterTargets(
		ctx context.Context,
		params *elasticloadbalancingv2.DeregisterTargetsInput,
		optFns ...func(*elasticloadbalancingv2.Options),
	) (*elasticloadbalancingv2.DeregisterTargetsOutput, error)
}

// ELBClient is the interface for classic Elastic Load Balancing operations.
type ELBClient interface {
	// DescribeLoadBalancers describes classic load balancers.
	DescribeLoadBalancers(
		ctx context.Context,
		params *elasticloadbalancing.DescribeLoadBalancersInput,
		optFns ...func(*elasticloadbalancing.Options),
	) (*elasticloadbalancing.DescribeLoadBalancersOutput, error)

	// DeregisterInstancesFromLoadBalancer detaches instances from a classic load balancer.
	DeregisterInstancesFromLoadBalancer(
		ctx context.Context,
		params *elasticloadbalancing.DeregisterInstancesFromLoadBalancerInput,
		optFns ...func(*elasticloadbalancing.Options),
	) (*elasticloadbalancing.DeregisterInstancesFromLoadBalancerOutput, error)
}

// AutoScalingClient is the interface for the Auto Scaling operations used
// during target discovery.
type AutoScalingClient interface {
	// DescribeLoadBalancerTargetGroups lists the target groups attached to a group.
	DescribeLoadBalancerTargetGroups(
		ctx context.Context,
		params *autoscaling.DescribeLoadBalancerTargetGroupsInput,
		optFns ...func(*autoscaling.Options),
	) (*autoscaling.DescribeLoadBalancerTargetGroupsOutput, error)
}
