// Where: internal/deploy/ports.go
// What: Platform port definitions for the deploy pipeline.
// Why: Allow the AWS SDK adapters to be swapped for fakes in tests.
package deploy

import (
	"context"
	"errors"
	"io"
)

// Last-update status values reported by the platform after a code update.
const (
	UpdateStatusInProgress = "InProgress"
	UpdateStatusSuccessful = "Successful"
	UpdateStatusFailed     = "Failed"
)

// ErrFunctionNotFound is returned by FunctionAPI adapters when the named
// function does not exist in the current account/region scope.
var ErrFunctionNotFound = errors.New("function not found")

// FunctionInfo is the subset of function configuration the pipeline reads.
type FunctionInfo struct {
	Arn              string
	Version          string
	LastUpdateStatus string
}

// CodeSource carries the new function code, either inline or as a reference
// to a staged S3 object. Exactly one of the two forms is populated.
type CodeSource struct {
	ZipFile  []byte
	S3Bucket string
	S3Key    string
}

// FunctionAPI is the function-update surface of the target platform.
type FunctionAPI interface {
	GetFunction(ctx context.Context, name string) (FunctionInfo, error)
	UpdateFunctionCode(ctx context.Context, name string, code CodeSource) (FunctionInfo, error)
	PublishVersion(ctx context.Context, name string) (FunctionInfo, error)
}

// ObjectStore is the object-put surface used for staging uploads.
type ObjectStore interface {
	PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64) error
}
