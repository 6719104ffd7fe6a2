// Where: internal/deploy/errors.go
// What: Typed errors raised by the deploy pipeline.
// Why: Surface one terminal, recognizable failure per run.
package deploy

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// PayloadTooLargeError reports an archive that exceeds the direct-upload
// ceiling while no staging bucket is configured. This fails closed instead
// of silently routing bytes through S3 without the bucket being named.
type PayloadTooLargeError struct {
	SizeBytes    int64
	CeilingBytes int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf(
		"archive is %s which exceeds the %s direct-upload limit; configure --aws-s3-bucket to stage through S3",
		humanize.IBytes(uint64(e.SizeBytes)),
		humanize.IBytes(uint64(e.CeilingBytes)),
	)
}

// StagingError reports a failed staging upload to object storage.
type StagingError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("stage s3://%s/%s: %v", e.Bucket, e.Key, e.Err)
}

func (e *StagingError) Unwrap() error { return e.Err }

// PublishError wraps any platform failure during function resolution, code
// update, version publish, or release wait.
type PublishError struct {
	Function string
	Err      error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s: %v", e.Function, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
