/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package awsutil

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
	"github.com/chaordic/lambda-spot-interruption/pkg/awsutil/mocks"
)

func TestFindInstanceTag_Found(t *testing.T) {
	ctx := context.Background()

	mockEC2 := &mocks.EC2Client{}
	mockEC2.On("DescribeTags", mock.Anything, mock.MatchedBy(func(input *ec2.DescribeTagsInput) bool {
		if len(input.Filters) != 2 {
			return false
		}
		return aws.ToString(input.Filters[0].Name) == "resource-id" &&
			input.Filters[0].Values[0] == "i-0b662ef9931388ba0" &&
			aws.ToString(input.Filters[1].Name) == "key" &&
			input.Filters[1].Values[0] == wellknown.TagASGGroupName
	})).Return(&ec2.DescribeTagsOutput{
		Tags: []types.TagDescription{
			{
				Key:   aws.String(wellknown.TagASGGroupName),
				Value: aws.String("web-asg"),
			},
		},
	}, nil)

	value, found, err := FindInstanceTag(ctx, mockEC2, "i-0b662ef9931388ba0", wellknown.TagASGGroupName)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "web-asg", value)

	mockEC2.AssertExpectations(t)
}

func TestFindInstanceTag_Missing(t *testing.T) {
	ctx := context.Background()

	mockEC2 := &mocks.EC2Client{}
	mockEC2.On("DescribeTags", mock.Anything, mock.Anything).Return(&ec2.DescribeTagsOutput{}, nil)

	value, found, err := FindInstanceTag(ctx, mockEC2, "i-0b662ef9931388ba0", wellknown.TagOnDemandASG)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestFindInstanceTag_APIError(t *testing.T) {
	ctx := context.Background()

	mockEC2 := &mocks.EC2Client{}
	mockEC2.On("DescribeTags", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	_, _, err := FindInstanceTag(ctx, mockEC2, "i-0b662ef9931388ba0", wellknown.TagOnDemandASG)
	assert.Error(t, err)
}
