package scaler

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
)

// AutoScalingClient is the interface for the Auto Scaling operations used by
// the scaler. It defines the minimal set of API methods needed.
type AutoScalingClient interface {
	// DescribeAutoScalingGroups describes one or more auto scaling groups.
	DescribeAutoScalingGroups(
		ctx context.Context,
		params *autoscaling.DescribeAutoScalingGroupsInput,
		optFns ...func(*autoscaling.Options),
	) (*autoscaling.DescribeAutoScalingGroupsOutput, error)

	// UpdateAutoScalingGroup updates the configuration of an auto scaling group.
	UpdateAutoScalingGroup(
		ctx context.Context,
		params *autoscaling.UpdateAutoScalingGroupInput,
		optFns ...func(*autoscaling.Options),
	) (*autoscaling.UpdateAutoScalingGroupOutput, error)
}
