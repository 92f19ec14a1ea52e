package awsutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSClient is the interface for AWS STS operations used for role assumption.
type STSClient interface {
	// AssumeRole returns temporary credentials for a role.
	AssumeRole(
		ctx context.Context,
		params *sts.AssumeRoleInput,
		optFns ...func(*sts.Options),
	) (*sts.AssumeRoleOutput, error)

	// GetCallerIdentity returns information about the AWS account and caller.
	GetCallerIdentity(
		ctx context.Context,
		params *sts.GetCallerIdentityInput,
		optFns ...func(*sts.Options),
	) (*sts.GetCallerIdentityOutput, error)
}

// EC2Client is the interface for the AWS EC2 operations used during
// discovery. It defines the minimal set of EC2 API methods needed.
type EC2Client interface {
	// DescribeTags describes tags matching the given filters.
	DescribeTags(
		ctx context.Context,
		params *ec2.DescribeTagsInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeTagsOutput, error)
}
