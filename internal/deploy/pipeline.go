// Where: internal/deploy/pipeline.go
// What: The build→stage→publish pipeline.
// Why: Compose resolution, archiving, staging, and publishing as one sequential run.
package deploy

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/poruru/lambda-function-cli/internal/build"
	"github.com/poruru/lambda-function-cli/internal/ui"
)

// Phase identifies where a pipeline run currently is, or where it ended.
type Phase string

const (
	PhaseResolving     Phase = "resolving"
	PhaseBuilding      Phase = "building"
	PhaseStaging       Phase = "staging"
	PhasePublishing    Phase = "publishing"
	PhaseDone          Phase = "done"
	PhaseSkippedUpload Phase = "skipped-upload"
	PhaseFailed        Phase = "failed"
)

// Request describes one deploy run. DeployTarget fields (function, bucket)
// arrive already merged from flags and saved configuration.
type Request struct {
	Function   string
	SourcePath string
	OutPath    string
	Upload     bool
	Publish    bool
	Wait       bool
	Bucket     string
	ObjectKey  string
}

// Result is the terminal output of a pipeline run.
type Result struct {
	Phase       Phase
	FunctionArn string
	VersionID   string
	StagingKey  string
	SizeBytes   int64
	EntryCount  int
}

// Pipeline runs a single deploy sequentially. No remote mutation happens
// before the publishing phase, so a failure never requires cleanup; staged
// objects are not rolled back on a later publish failure.
type Pipeline struct {
	Publisher *Publisher
	UI        ui.UserInterface
	// Ceiling overrides the direct-upload limit; zero means the default.
	Ceiling int64
}

// Run executes the pipeline and returns the first failure, if any.
// When req.Upload is false the run ends after the build (and optional --out
// write) without touching the network; Pipeline.Publisher may be nil then.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	if p.UI == nil {
		p.UI = ui.New(io.Discard)
	}
	result := Result{Phase: PhaseResolving}

	target, err := build.ResolveTarget(req.SourcePath)
	if err != nil {
		return p.fail(result, err)
	}

	result.Phase = PhaseBuilding
	artifact, err := build.BuildArchive(target)
	if err != nil {
		return p.fail(result, err)
	}
	result.SizeBytes = artifact.Size()
	result.EntryCount = artifact.EntryCount
	p.UI.Debug(fmt.Sprintf(
		"built archive: %d entries, %s",
		artifact.EntryCount, humanize.IBytes(uint64(artifact.Size())),
	))

	if req.OutPath != "" {
		if err := artifact.WriteFile(req.OutPath); err != nil {
			return p.fail(result, err)
		}
		p.UI.Info(fmt.Sprintf("Wrote archive to %s", req.OutPath))
	}

	if !req.Upload {
		result.Phase = PhaseSkippedUpload
		return result, nil
	}

	policy := StagingPolicy{Bucket: req.Bucket, Key: req.ObjectKey, Ceiling: p.Ceiling}
	plan, err := policy.Plan(req.Function, artifact.Size())
	if err != nil {
		return p.fail(result, err)
	}

	info, err := p.Publisher.Resolve(ctx, req.Function)
	if err != nil {
		if msg, ok := DescribeNotFound(req.Function, err); ok {
			p.UI.Error(msg)
		}
		return p.fail(result, err)
	}
	result.FunctionArn = info.Arn
	p.UI.Debug(fmt.Sprintf("found function: %s", info.Arn))

	if !plan.Direct {
		result.Phase = PhaseStaging
		if err := p.Publisher.Stage(ctx, plan, artifact); err != nil {
			return p.fail(result, err)
		}
		result.StagingKey = plan.Key
		p.UI.Debug(fmt.Sprintf("staged archive at s3://%s/%s", plan.Bucket, plan.Key))
	}

	result.Phase = PhasePublishing
	if _, err := p.Publisher.UpdateCode(ctx, info.Arn, plan, artifact); err != nil {
		return p.fail(result, err)
	}

	// The update leaves LastUpdateStatus at InProgress, and publishing a
	// version in that window is rejected with a conflict. The release poll
	// therefore runs before PublishVersion; a version publish waits even
	// under --no-wait so the snapshot captures the code just uploaded.
	if req.Wait || req.Publish {
		p.UI.Info("Code uploaded, waiting till it's valid.")
		status, err := p.Publisher.WaitReleased(ctx, info.Arn)
		if err != nil {
			return p.fail(result, err)
		}
		if status != UpdateStatusSuccessful {
			return p.fail(result, &PublishError{
				Function: req.Function,
				Err:      fmt.Errorf("function update finished with status %s", status),
			})
		}
	}

	if req.Publish {
		version, err := p.Publisher.PublishVersion(ctx, info.Arn)
		if err != nil {
			return p.fail(result, err)
		}
		result.VersionID = version.Version
	}

	result.Phase = PhaseDone
	return result, nil
}

func (p *Pipeline) fail(result Result, err error) (Result, error) {
	result.Phase = PhaseFailed
	return result, err
}
