/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package scaler

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	asgtypes "github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chaordic/lambda-spot-interruption/internal/scaler/mocks"
	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
	"github.com/chaordic/lambda-spot-interruption/pkg/awsutil"
	awsutilmocks "github.com/chaordic/lambda-spot-interruption/pkg/awsutil/mocks"
)

const testInstanceID = "i-0b662ef9931388ba0"

func newTestScaler() (*Scaler, *mocks.AutoScalingClient, *awsutilmocks.EC2Client) {
	mockASG := &mocks.AutoScalingClient{}
	mockEC2 := &awsutilmocks.EC2Client{}

	s := NewWithClients(
		func(aws.Config) AutoScalingClient { return mockASG },
		func(aws.Config) awsutil.EC2Client { return mockEC2 },
	)
	return s, mockASG, mockEC2
}

func describeGroupOutput(name string, desired, max int32) *autoscaling.DescribeAutoScalingGroupsOutput {
	return &autoscaling.DescribeAutoScalingGroupsOutput{
		AutoScalingGroups: []asgtypes.AutoScalingGroup{
			{
				AutoScalingGroupName: aws.String(name),
				DesiredCapacity:      aws.Int32(desired),
				MaxSize:              aws.Int32(max),
			},
		},
	}
}

func TestNew(t *testing.T) {
	s := New()
	assert.NotNil(t, s)
	assert.NotNil(t, s.asgFactory)
	assert.NotNil(t, s.ec2Factory)
}

func TestScaleUp_IncrementsDesiredCapacity(t *testing.T) {
	ctx := context.Background()
	s, mockASG, _ := newTestScaler()

	mockASG.On("DescribeAutoScalingGroups", mock.Anything, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{"web-asg"},
	}).Return(describeGroupOutput("web-asg", 3, 5), nil)

	mockASG.On("UpdateAutoScalingGroup", mock.Anything, &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String("web-asg"),
		DesiredCapacity:      aws.Int32(4),
	}).Return(&autoscaling.UpdateAutoScalingGroupOutput{}, nil)

	outcome, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{
		InstanceID: testInstanceID,
		GroupName:  "web-asg",
	})
	assert.NoError(t, err)
	assert.Equal(t, "web-asg", outcome.Group)
	assert.Equal(t, int32(3), outcome.Previous)
	assert.Equal(t, int32(4), outcome.Desired)
	assert.False(t, outcome.AtMax)

	mockASG.AssertExpectations(t)
}

func TestScaleUp_AtMaxIsNoop(t *testing.T) {
	ctx := context.Background()
	s, mockASG, _ := newTestScaler()

	mockASG.On("DescribeAutoScalingGroups", mock.Anything, mock.Anything).Return(describeGroupOutput("web-asg", 5, 5), nil)

	outcome, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{
		InstanceID: testInstanceID,
		GroupName:  "web-asg",
	})
	assert.NoError(t, err)
	assert.True(t, outcome.AtMax)
	assert.Equal(t, int32(5), outcome.Desired)

	mockASG.AssertNotCalled(t, "UpdateAutoScalingGroup", mock.Anything, mock.Anything)
}

func TestScaleUp_TagFallback(t *testing.T) {
	ctx := context.Background()
	s, mockASG, mockEC2 := newTestScaler()

	mockEC2.On("DescribeTags", mock.Anything, mock.MatchedBy(func(input *awsec2.DescribeTagsInput) bool {
		return input.Filters[1].Values[0] == wellknown.TagOnDemandASG
	})).Return(&awsec2.DescribeTagsOutput{
		Tags: []ec2types.TagDescription{
			{Key: aws.String(wellknown.TagOnDemandASG), Value: aws.String("ondemand-asg")},
		},
	}, nil)

	mockASG.On("DescribeAutoScalingGroups", mock.Anything, &autoscaling.DescribeAutoScalingGroupsInput{
		AutoScalingGroupNames: []string{"ondemand-asg"},
	}).Return(describeGroupOutput("ondemand-asg", 1, 3), nil)

	mockASG.On("UpdateAutoScalingGroup", mock.Anything, &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String("ondemand-asg"),
		DesiredCapacity:      aws.Int32(2),
	}).Return(&autoscaling.UpdateAutoScalingGroupOutput{}, nil)

	outcome, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{InstanceID: testInstanceID})
	assert.NoError(t, err)
	assert.Equal(t, "ondemand-asg", outcome.Group)
	assert.Equal(t, int32(2), outcome.Desired)

	mockEC2.AssertExpectations(t)
	mockASG.AssertExpectations(t)
}

func TestScaleUp_NoGroupSkips(t *testing.T) {
	ctx := context.Background()
	s, mockASG, mockEC2 := newTestScaler()

	mockEC2.On("DescribeTags", mock.Anything, mock.Anything).Return(&awsec2.DescribeTagsOutput{}, nil)

	outcome, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{InstanceID: testInstanceID})
	assert.NoError(t, err)
	assert.True(t, outcome.Skipped)

	mockASG.AssertNotCalled(t, "DescribeAutoScalingGroups", mock.Anything, mock.Anything)
	mockASG.AssertNotCalled(t, "UpdateAutoScalingGroup", mock.Anything, mock.Anything)
}

func TestScaleUp_GroupNotFound(t *testing.T) {
	ctx := context.Background()
	s, mockASG, _ := newTestScaler()

	mockASG.On("DescribeAutoScalingGroups", mock.Anything, mock.Anything).Return(&autoscaling.DescribeAutoScalingGroupsOutput{}, nil)

	_, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{
		InstanceID: testInstanceID,
		GroupName:  "missing-asg",
	})
	assert.Error(t, err)

	var capErr *CapacityAdjustmentError
	assert.True(t, errors.As(err, &capErr))
	assert.Equal(t, "missing-asg", capErr.Group)
}

func TestScaleUp_UpdateRejected(t *testing.T) {
	ctx := context.Background()
	s, mockASG, _ := newTestScaler()

	mockASG.On("DescribeAutoScalingGroups", mock.Anything, mock.Anything).Return(describeGroupOutput("web-asg", 3, 5), nil)
	mockASG.On("UpdateAutoScalingGroup", mock.Anything, mock.Anything).Return(nil, &smithy.GenericAPIError{Code: "ScalingActivityInProgress"})

	_, err := s.ScaleUp(ctx, logr.Discard(), aws.Config{}, Spec{
		InstanceID: testInstanceID,
		GroupName:  "web-asg",
	})

	var capErr *CapacityAdjustmentError
	assert.True(t, errors.As(err, &capErr))
	assert.Equal(t, "web-asg", capErr.Group)
}
