/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package awsutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"

	"github.com/chaordic/lambda-spot-interruption/internal/recovery"
	"github.com/chaordic/lambda-spot-interruption/internal/wellknown"
)

// ErrAuthorization indicates a cross-account role assumption was rejected,
// typically because the trust policy is missing or wrong. It is fatal and is
// never retried.
var ErrAuthorization = errors.New("role assumption rejected")

// maxRetryAttempts bounds the SDK standard retryer for transient and
// throttling errors. Authorization failures are not retryable and the
// standard retryer never retries them.
const maxRetryAttempts = 5

// sessionDuration is the lifetime of assumed credentials. Credentials only
// need to outlive a single invocation, so the STS minimum is enough.
const sessionDuration = 900

// LoadConfig loads the base AWS config for the given region with the
// standard retryer tuned for a short-lived invocation.
func LoadConfig(ctx context.Context, region string) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewStandard(), maxRetryAttempts)
		}),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load AWS config: %w", err)
	}
	return cfg, nil
}

// RoleARN builds the ARN of a named role in the given account.
func RoleARN(account, roleName string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", account, roleName)
}

// AssumeRole exchanges the base credentials for short-lived credentials in
// the target account via an explicit sts:AssumeRole call. The returned config
// is scoped to a single invocation and must not be cached or reused across
// accounts. Rejections map to ErrAuthorization.
func AssumeRole(ctx context.Context, base aws.Config, client STSClient, account, roleName string) (aws.Config, error) {
	arn := RoleARN(account, roleName)
	sessionName := fmt.Sprintf("%s-%s", wellknown.RoleSessionNamePrefix, uuid.NewString())

	out, err := client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(arn),
		RoleSessionName: aws.String(sessionName),
		DurationSeconds: aws.Int32(sessionDuration),
	})
	if err != nil {
		if recovery.IsAuthorization(err) {
			return aws.Config{}, fmt.Errorf("%w: %s: %v", ErrAuthorization, arn, err)
		}
		return aws.Config{}, fmt.Errorf("assume role %s: %w", arn, err)
	}

	creds := out.Credentials
	scoped := base.Copy()
	scoped.Credentials = credentials.NewStaticCredentialsProvider(
		aws.ToString(creds.AccessKeyId),
		aws.ToString(creds.SecretAccessKey),
		aws.ToString(creds.SessionToken),
	)

	return scoped, nil
}

// NewSTSClient builds the production STS client from a base config.
func NewSTSClient(cfg aws.Config) STSClient {
	return sts.NewFromConfig(cfg)
}
