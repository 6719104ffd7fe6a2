// Where: internal/platform/aws_factory.go
// What: AWS client factory for Lambda and S3.
// Why: Encapsulate SDK configuration for profile, region, and explicit keys.
package platform

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/lambda-function-cli/internal/deploy"
)

// Options selects the credential scope for a deploy. Empty fields fall back
// to the SDK's default resolution chain (shared config, environment, IMDS).
type Options struct {
	Profile         string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// NewClients builds the Lambda and S3 adapters behind the deploy ports.
func NewClients(ctx context.Context, opts Options) (deploy.FunctionAPI, deploy.ObjectStore, error) {
	cfg, err := loadAWSConfig(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return lambdaClient{client: lambda.NewFromConfig(cfg)},
		s3Client{client: s3.NewFromConfig(cfg)},
		nil
}

func loadAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			opts.SessionToken,
		)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(creds))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, err
	}
	return cfg, nil
}
