/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package awsutil

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// FindInstanceTag looks up a single tag value on an EC2 instance. The second
// return value reports whether the tag exists; a missing tag is not an error.
func FindInstanceTag(ctx context.Context, client EC2Client, instanceID, key string) (string, bool, error) {
	out, err := client.DescribeTags(ctx, &ec2.DescribeTagsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("resource-id"),
				Values: []string{instanceID},
			},
			{
				Name:   aws.String("key"),
				Values: []string{key},
			},
		},
	})
	if err != nil {
		return "", false, err
	}

	if len(out.Tags) == 0 {
		return "", false, nil
	}

	return aws.ToString(out.Tags[0].Value), true, nil
}
