// Where: internal/platform/aws_clients.go
// What: AWS SDK adapters for Lambda and S3.
// Why: Map the deploy ports to SDK calls and error types.
package platform

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/poruru/lambda-function-cli/internal/deploy"
)

type lambdaClient struct {
	client *lambda.Client
}

func (c lambdaClient) GetFunction(ctx context.Context, name string) (deploy.FunctionInfo, error) {
	if c.client == nil {
		return deploy.FunctionInfo{}, fmt.Errorf("lambda client is nil")
	}
	resp, err := c.client.GetFunction(ctx, &lambda.GetFunctionInput{
		FunctionName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return deploy.FunctionInfo{}, fmt.Errorf("%w: %s", deploy.ErrFunctionNotFound, name)
		}
		return deploy.FunctionInfo{}, err
	}
	if resp.Configuration == nil {
		return deploy.FunctionInfo{}, fmt.Errorf("get function %s: empty configuration", name)
	}
	return deploy.FunctionInfo{
		Arn:              aws.ToString(resp.Configuration.FunctionArn),
		Version:          aws.ToString(resp.Configuration.Version),
		LastUpdateStatus: string(resp.Configuration.LastUpdateStatus),
	}, nil
}

func (c lambdaClient) UpdateFunctionCode(
	ctx context.Context,
	name string,
	code deploy.CodeSource,
) (deploy.FunctionInfo, error) {
	if c.client == nil {
		return deploy.FunctionInfo{}, fmt.Errorf("lambda client is nil")
	}
	input := &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(name),
	}
	if len(code.ZipFile) > 0 {
		input.ZipFile = code.ZipFile
	} else {
		input.S3Bucket = aws.String(code.S3Bucket)
		input.S3Key = aws.String(code.S3Key)
	}
	resp, err := c.client.UpdateFunctionCode(ctx, input)
	if err != nil {
		return deploy.FunctionInfo{}, err
	}
	return deploy.FunctionInfo{
		Arn:              aws.ToString(resp.FunctionArn),
		Version:          aws.ToString(resp.Version),
		LastUpdateStatus: string(resp.LastUpdateStatus),
	}, nil
}

func (c lambdaClient) PublishVersion(ctx context.Context, name string) (deploy.FunctionInfo, error) {
	if c.client == nil {
		return deploy.FunctionInfo{}, fmt.Errorf("lambda client is nil")
	}
	resp, err := c.client.PublishVersion(ctx, &lambda.PublishVersionInput{
		FunctionName: aws.String(name),
	})
	if err != nil {
		return deploy.FunctionInfo{}, err
	}
	return deploy.FunctionInfo{
		Arn:              aws.ToString(resp.FunctionArn),
		Version:          aws.ToString(resp.Version),
		LastUpdateStatus: string(resp.LastUpdateStatus),
	}, nil
}

type s3Client struct {
	client *s3.Client
}

func (c s3Client) PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64) error {
	if c.client == nil {
		return fmt.Errorf("s3 client is nil")
	}
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	return err
}
