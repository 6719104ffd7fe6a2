// Where: internal/deploy/staging.go
// What: Direct-vs-staged upload decision.
// Why: Keep the fail-closed size policy in one place, decided before any network call.
package deploy

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/poruru/lambda-function-cli/internal/meta"
)

// DirectUploadCeiling is the largest archive accepted inline by the
// function-update call. Matches the platform's synchronous update payload
// limit for zip uploads.
const DirectUploadCeiling int64 = 50 << 20

// StagingPlan is the outcome of the staging decision.
type StagingPlan struct {
	Direct bool
	Bucket string
	Key    string
}

// StagingPolicy decides whether an archive is uploaded inline or staged
// through object storage first.
type StagingPolicy struct {
	Bucket string // stage through this bucket whenever set
	Key    string // explicit object key, generated when empty
	// Ceiling overrides DirectUploadCeiling; zero means the default.
	Ceiling int64
}

// Plan resolves the staging decision for an archive of the given size.
// An explicitly configured bucket always stages; otherwise the archive must
// fit under the ceiling or the plan fails with PayloadTooLargeError.
func (p StagingPolicy) Plan(function string, sizeBytes int64) (StagingPlan, error) {
	if p.Bucket != "" {
		key := p.Key
		if key == "" {
			key = generatedKey(function)
		}
		return StagingPlan{Bucket: p.Bucket, Key: key}, nil
	}

	ceiling := p.Ceiling
	if ceiling <= 0 {
		ceiling = DirectUploadCeiling
	}
	if sizeBytes > ceiling {
		return StagingPlan{}, &PayloadTooLargeError{SizeBytes: sizeBytes, CeilingBytes: ceiling}
	}
	return StagingPlan{Direct: true}, nil
}

func generatedKey(function string) string {
	return fmt.Sprintf("%s/%s/%s.zip", meta.StagingPrefix, function, uuid.NewString())
}
