// Where: internal/deploy/publisher.go
// What: Function resolution, staging upload, code update, and version publish.
// Why: Wrap the platform ports with the pipeline's error taxonomy.
package deploy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poruru/lambda-function-cli/internal/build"
)

const defaultWaitInterval = time.Second

// Publisher performs the remote half of a deploy against the platform ports.
// It adds no retry logic beyond what the underlying clients provide.
type Publisher struct {
	Functions FunctionAPI
	Objects   ObjectStore
	// WaitInterval is the poll interval for WaitReleased; zero means 1s.
	WaitInterval time.Duration
}

// Resolve validates that the function exists and returns its configuration.
func (p *Publisher) Resolve(ctx context.Context, function string) (FunctionInfo, error) {
	info, err := p.Functions.GetFunction(ctx, function)
	if err != nil {
		return FunctionInfo{}, &PublishError{Function: function, Err: err}
	}
	return info, nil
}

// Stage uploads the archive to the staging bucket named in the plan.
func (p *Publisher) Stage(ctx context.Context, plan StagingPlan, artifact build.Artifact) error {
	if p.Objects == nil {
		return &StagingError{Bucket: plan.Bucket, Key: plan.Key, Err: errors.New("object store not configured")}
	}
	body := bytes.NewReader(artifact.Bytes)
	if err := p.Objects.PutObject(ctx, plan.Bucket, plan.Key, body, artifact.Size()); err != nil {
		return &StagingError{Bucket: plan.Bucket, Key: plan.Key, Err: err}
	}
	return nil
}

// UpdateCode replaces the function's code, inline or via the staged object.
func (p *Publisher) UpdateCode(
	ctx context.Context,
	function string,
	plan StagingPlan,
	artifact build.Artifact,
) (FunctionInfo, error) {
	code := CodeSource{}
	if plan.Direct {
		code.ZipFile = artifact.Bytes
	} else {
		code.S3Bucket = plan.Bucket
		code.S3Key = plan.Key
	}
	info, err := p.Functions.UpdateFunctionCode(ctx, function, code)
	if err != nil {
		return FunctionInfo{}, &PublishError{Function: function, Err: err}
	}
	return info, nil
}

// PublishVersion creates an immutable numbered version from the current code.
// Callers must let the preceding update leave InProgress first (WaitReleased);
// the platform rejects a publish during an in-progress update. An update
// racing in from elsewhere can still be captured instead; that race is
// platform-level and not mitigated here.
func (p *Publisher) PublishVersion(ctx context.Context, function string) (FunctionInfo, error) {
	info, err := p.Functions.PublishVersion(ctx, function)
	if err != nil {
		return FunctionInfo{}, &PublishError{Function: function, Err: err}
	}
	return info, nil
}

// WaitReleased polls the function until its last update leaves InProgress
// and returns the terminal status.
func (p *Publisher) WaitReleased(ctx context.Context, function string) (string, error) {
	interval := p.WaitInterval
	if interval <= 0 {
		interval = defaultWaitInterval
	}
	for {
		info, err := p.Functions.GetFunction(ctx, function)
		if err != nil {
			return "", &PublishError{Function: function, Err: err}
		}
		if info.LastUpdateStatus != UpdateStatusInProgress {
			return info.LastUpdateStatus, nil
		}
		select {
		case <-ctx.Done():
			return "", &PublishError{Function: function, Err: ctx.Err()}
		case <-time.After(interval):
		}
	}
}

// DescribeNotFound turns the not-found sentinel into a user-facing message.
func DescribeNotFound(function string, err error) (string, bool) {
	if errors.Is(err, ErrFunctionNotFound) {
		return fmt.Sprintf("function %q was not found in the current scope; check the name, region, and profile", function), true
	}
	return "", false
}
